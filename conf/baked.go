package conf

// Identity of the build recorded in the baked table.
const (
	// RecordedVersion is the runtime version the table was generated for.
	RecordedVersion = "2.3.3"
	// LibVersion is the library ABI version ("ruby_version").
	LibVersion = "2.3.0"
	// Arch is the target architecture name ("arch").
	Arch = "universal-darwin17"
	// BaseName is the runtime base name ("RUBY_BASE_NAME").
	BaseName = "ruby"
	// FrameworkPrefix is the install prefix below DESTDIR.
	FrameworkPrefix = "/System/Library/Frameworks/Ruby.framework/Versions/2.3/usr"
)

// libDirSuffix is removed from the lib directory to find the top directory.
const libDirSuffix = "/lib/" + BaseName + "/" + LibVersion + "/" + Arch

const (
	defaultArchFlag   = " -arch x86_64 -arch i386"
	universalArchs    = " x86_64=x86_64 i386=i386"
	includeDirSuffix  = "$(prefix)/include"
	configureArgs     = " '--prefix=/usr' '--mandir=/usr/share/man' '--infodir=/usr/share/info' '--disable-dependency-tracking' '--prefix=/System/Library/Frameworks/Ruby.framework/Versions/2.3/usr' '--sysconfdir=/Library/Ruby/Site' '--with-sitedir=/Library/Ruby/Site' '--enable-shared' '--with-arch=x86_64,i386' '--without-ext=tk' 'ac_cv_func_getcontext=no' 'ac_cv_func_setcontext=no' 'ac_cv_func_utimensat=no' 'ac_cv_c_compiler_gnu=no' 'ac_cv_header_net_if_h=yes' 'av_cv_header_ifaddrs_h=yes' 'rb_cv_pri_prefix_long_long=ll' 'ac_cv_sizeof_struct_stat_st_size=SIZEOF_OFF_T' 'ac_cv_sizeof_struct_stat_st_blocks=SIZEOF_INT64_T' 'ac_cv_sizeof_struct_stat_st_ino=SIZEOF_UINT64_T' 'CC=/BuildRoot/Applications/Xcode.app/Contents/Developer/Toolchains/OSX10.13.xctoolchain/usr/bin/cc' 'CFLAGS=-arch x86_64 -arch i386 -g -Os -pipe -DHAVE_GCC_ATOMIC_BUILTINS -iwithsysroot /usr/local/libressl/include' 'LDFLAGS=-arch x86_64 -arch i386            -L /BuildRoot/Applications/Xcode.app/Contents/Developer/Platforms/MacOSX.platform/Developer/SDKs/MacOSX10.13.Internal.sdk/usr/local/libressl/lib' 'CXX=/BuildRoot/Applications/Xcode.app/Contents/Developer/Toolchains/OSX10.13.xctoolchain/usr/bin/c++' 'CXXFLAGS=-arch x86_64 -arch i386 -g -Os -pipe '"
	sdkLibDir         = "/BuildRoot/Applications/Xcode.app/Contents/Developer/Platforms/MacOSX.platform/Developer/SDKs/MacOSX10.13.Internal.sdk/usr/local"
	bakedLDFLAGS      = "-L.             -L " + sdkLibDir + "/libressl/lib -L" + sdkLibDir + "/lib"
	bakedCFLAGS       = " -g -Os -pipe -DHAVE_GCC_ATOMIC_BUILTINS -iwithsysroot /usr/local/libressl/include"
	bakedPOSTLINK     = "test -z '$(RUBY_CODESIGN)' || codesign -s '$(RUBY_CODESIGN)' -f $@"
	bakedLibRubyAlias = "lib$(RUBY_BASE_NAME).$(MAJOR).$(MINOR).dylib lib$(RUBY_INSTALL_NAME).dylib"
)

// Keys whose baked value is replaced while the table is built.
const (
	keyDestDir    = "DESTDIR"
	keyPrefix     = "prefix"
	keyArchFlag   = "ARCH_FLAG"
	keyIncludeDir = "includedir"
	keySDKRoot    = "SDKROOT"
	keyTopDir     = "topdir"
)

// baked is the recorded build configuration in its original order.
var baked = [...][2]string{
	{keyDestDir, ""},
	{"MAJOR", "2"},
	{"MINOR", "3"},
	{"TEENY", "0"},
	{"PATCHLEVEL", "222"},
	{"INSTALL", "/usr/bin/install -c"},
	{"EXEEXT", ""},
	{keyPrefix, FrameworkPrefix},
	{"ruby_install_name", "$(RUBY_BASE_NAME)"},
	{"RUBY_INSTALL_NAME", "$(RUBY_BASE_NAME)"},
	{"RUBY_SO_NAME", "$(RUBY_BASE_NAME).$(MAJOR).$(MINOR).$(TEENY)"},
	{"exec", "exec"},
	{"ruby_pc", "ruby-2.3.pc"},
	{"PACKAGE", "ruby"},
	{"BUILTIN_TRANSSRCS", " enc/trans/newline.c"},
	{"USE_RUBYGEMS", "YES"},
	{"MANTYPE", "doc"},
	{"NROFF", "/usr/bin/nroff"},
	{"vendorarchhdrdir", "$(vendorhdrdir)/$(sitearch)"},
	{"sitearchhdrdir", "$(sitehdrdir)/$(sitearch)"},
	{"rubyarchhdrdir", "$(rubyhdrdir)/$(arch)"},
	{"vendorhdrdir", "$(rubyhdrdir)/vendor_ruby"},
	{"sitehdrdir", "$(rubyhdrdir)/site_ruby"},
	{"rubyhdrdir", "$(includedir)/$(RUBY_VERSION_NAME)"},
	{"RUBY_SEARCH_PATH", ""},
	{"UNIVERSAL_INTS", "'long long' long int short"},
	{"UNIVERSAL_ARCHNAMES", universalArchs},
	{"configure_args", configureArgs},
	{"CONFIGURE", "configure"},
	{"vendorarchdir", "$(vendorlibdir)/$(sitearch)"},
	{"vendorlibdir", "$(vendordir)/$(ruby_version)"},
	{"vendordir", "$(rubylibprefix)/vendor_ruby"},
	{"sitearchdir", "$(sitelibdir)/$(sitearch)"},
	{"sitelibdir", "$(sitedir)/$(ruby_version)"},
	{"sitedir", "$(DESTDIR)/Library/Ruby/Site"},
	{"rubyarchdir", "$(rubylibdir)/$(arch)"},
	{"rubylibdir", "$(rubylibprefix)/$(ruby_version)"},
	{"ruby_version", LibVersion},
	{"sitearch", "$(arch)"},
	{"arch", Arch},
	{"sitearchincludedir", "$(includedir)/$(sitearch)"},
	{"archincludedir", "$(includedir)/$(arch)"},
	{"sitearchlibdir", "$(libdir)/$(sitearch)"},
	{"archlibdir", "$(libdir)/$(arch)"},
	{"libdirname", "libdir"},
	{"RUBY_EXEC_PREFIX", FrameworkPrefix},
	{"RUBY_LIB_VERSION", ""},
	{"RUBY_LIB_VERSION_STYLE", "3\t/* full */"},
	{"RI_BASE_NAME", "ri"},
	{"ridir", "$(datarootdir)/$(RI_BASE_NAME)"},
	{"rubysitearchprefix", "$(rubylibprefix)/$(sitearch)"},
	{"rubyarchprefix", "$(rubylibprefix)/$(arch)"},
	{"MAKEFILES", "Makefile GNUmakefile"},
	{"PLATFORM_DIR", ""},
	{"THREAD_MODEL", "pthread"},
	{"SYMBOL_PREFIX", "_"},
	{"EXPORT_PREFIX", ""},
	{"COMMON_HEADERS", ""},
	{"COMMON_MACROS", ""},
	{"COMMON_LIBS", ""},
	{"MAINLIBS", ""},
	{"ENABLE_SHARED", "yes"},
	{"DLDLIBS", ""},
	{"SOLIBS", "$(LIBS)"},
	{"LIBRUBYARG_SHARED", "-l$(RUBY_SO_NAME)"},
	{"LIBRUBYARG_STATIC", "-l$(RUBY_SO_NAME)-static -framework CoreFoundation"},
	{"LIBRUBYARG", "$(LIBRUBYARG_SHARED)"},
	{"LIBRUBY", "$(LIBRUBY_SO)"},
	{"LIBRUBY_ALIASES", bakedLibRubyAlias},
	{"LIBRUBY_SO", "lib$(RUBY_SO_NAME).dylib"},
	{"LIBRUBY_A", "lib$(RUBY_SO_NAME)-static.a"},
	{"RUBYW_INSTALL_NAME", ""},
	{"rubyw_install_name", ""},
	{"EXTDLDFLAGS", ""},
	{"EXTLDFLAGS", ""},
	{"strict_warnflags", ""},
	{"warnflags", ""},
	{"debugflags", "-g"},
	{"optflags", ""},
	{"NULLCMD", ":"},
	{"DLNOBJ", "dln.o"},
	{"EXECUTABLE_EXTS", ""},
	{"ARCHFILE", ""},
	{"LIBRUBY_RELATIVE", "no"},
	{"EXTOUT", ".ext"},
	{"PREP", "miniruby$(EXEEXT)"},
	{"CROSS_COMPILING", "no"},
	{"TEST_RUNNABLE", "yes"},
	{"rubylibprefix", "$(libdir)/$(RUBY_BASE_NAME)"},
	{"setup", "Setup"},
	{"ENCSTATIC", ""},
	{"EXTSTATIC", ""},
	{"STRIP", "strip -A -n"},
	{"TRY_LINK", ""},
	{"PRELOADENV", "DYLD_INSERT_LIBRARIES"},
	{"LIBPATHENV", "DYLD_LIBRARY_PATH"},
	{"RPATHFLAG", ""},
	{"LIBPATHFLAG", " -L%s"},
	{"LINK_SO", "\n$(POSTLINK)"},
	{"ASMEXT", "S"},
	{"LIBEXT", "a"},
	{"DLEXT2", ""},
	{"DLEXT", "bundle"},
	{"LDSHAREDXX", "$(CXX) -dynamic -bundle"},
	{"LDSHARED", "$(CC) -dynamic -bundle"},
	{"CCDLFLAGS", ""},
	{"STATIC", ""},
	{keyArchFlag, defaultArchFlag},
	{"DLDFLAGS", "-Wl,-undefined,dynamic_lookup -Wl,-multiply_defined,suppress"},
	{"ALLOCA", ""},
	{"codesign", "codesign"},
	{"POSTLINK", bakedPOSTLINK},
	{"WERRORFLAG", ""},
	{"CHDIR", "cd -P"},
	{"RMALL", "rm -fr"},
	{"RMDIRS", "rmdir -p"},
	{"RMDIR", "rmdir"},
	{"CP", "cp"},
	{"RM", "rm -f"},
	{"PKG_CONFIG", ""},
	{"PYTHON", ""},
	{"DOXYGEN", ""},
	{"DOT", ""},
	{"MAKEDIRS", "mkdir -p"},
	{"MKDIR_P", "mkdir -p"},
	{"INSTALL_DATA", "$(INSTALL) -m 644"},
	{"INSTALL_SCRIPT", "$(INSTALL)"},
	{"INSTALL_PROGRAM", "$(INSTALL)"},
	{"SET_MAKE", ""},
	{"LN_S", "ln -s"},
	{"NM", "nm"},
	{"DLLWRAP", ""},
	{"WINDRES", ""},
	{"OBJCOPY", ""},
	{"OBJDUMP", "objdump"},
	{"ASFLAGS", ""},
	{"AS", "as"},
	{"AR", "ar"},
	{"RANLIB", "ranlib"},
	{"try_header", "try_compile"},
	{"CC_VERSION", "$(CC) -v"},
	{"COUTFLAG", "-o "},
	{"OUTFLAG", "-o "},
	{"CPPOUTFILE", "-o conftest.i"},
	{"GNU_LD", "no"},
	{"LD", "ld"},
	{"GCC", ""},
	{"EGREP", "/usr/bin/grep -E"},
	{"GREP", "/usr/bin/grep"},
	{"CPP", "$(CC) -E"},
	{"CXXFLAGS", " -g -Os -pipe "},
	{"OBJEXT", "o"},
	{"CPPFLAGS", "-D_XOPEN_SOURCE -D_DARWIN_C_SOURCE -D_DARWIN_UNLIMITED_SELECT -D_REENTRANT $(DEFS) $(cppflags)"},
	{"LDFLAGS", bakedLDFLAGS},
	{"CFLAGS", bakedCFLAGS},
	{"CXX", "xcrun clang++"},
	{"CC", "xcrun clang"},
	{"NACL_LIB_PATH", ""},
	{"NACL_SDK_VARIANT", ""},
	{"NACL_SDK_ROOT", ""},
	{"NACL_TOOLCHAIN", ""},
	{"target_os", "darwin17"},
	{"target_vendor", "apple"},
	{"target_cpu", "universal"},
	{"target", "universal-apple-darwin17"},
	{"host_os", "darwin17"},
	{"host_vendor", "apple"},
	{"host_cpu", "x86_64"},
	{"host", "x86_64-apple-darwin17"},
	{"RUBY_VERSION_NAME", "$(RUBY_BASE_NAME)-$(ruby_version)"},
	{"RUBYW_BASE_NAME", "rubyw"},
	{"RUBY_BASE_NAME", BaseName},
	{"build_os", "darwin17"},
	{"build_vendor", "apple"},
	{"build_cpu", "x86_64"},
	{"build", "x86_64-apple-darwin17"},
	{"RUBY_PROGRAM_VERSION", RecordedVersion},
	{"cxxflags", " $(optflags) $(debugflags) $(warnflags)"},
	{"cppflags", ""},
	{"cflags", " $(optflags) $(debugflags) $(warnflags)"},
	{"target_alias", ""},
	{"host_alias", ""},
	{"build_alias", ""},
	{"LIBS", "-lpthread -ldl -lobjc"},
	{"ECHO_T", ""},
	{"ECHO_N", ""},
	{"ECHO_C", `\\c`},
	{"DEFS", ""},
	{"mandir", "$(DESTDIR)/usr/share/man"},
	{"localedir", "$(datarootdir)/locale"},
	{"libdir", "$(exec_prefix)/lib"},
	{"psdir", "$(docdir)"},
	{"pdfdir", "$(docdir)"},
	{"dvidir", "$(docdir)"},
	{"htmldir", "$(docdir)"},
	{"infodir", "$(DESTDIR)/usr/share/info"},
	{"docdir", "$(datarootdir)/doc/$(PACKAGE)"},
	{"oldincludedir", "/usr/include"},
	{keyIncludeDir, includeDirSuffix},
	{"localstatedir", "$(prefix)/var"},
	{"sharedstatedir", "$(prefix)/com"},
	{"sysconfdir", "$(DESTDIR)/Library/Ruby/Site"},
	{"datadir", "$(datarootdir)"},
	{"datarootdir", "$(prefix)/share"},
	{"libexecdir", "$(exec_prefix)/libexec"},
	{"sbindir", "$(exec_prefix)/sbin"},
	{"bindir", "$(exec_prefix)/bin"},
	{"exec_prefix", "$(prefix)"},
	{"PACKAGE_URL", ""},
	{"PACKAGE_BUGREPORT", ""},
	{"PACKAGE_STRING", ""},
	{"PACKAGE_VERSION", ""},
	{"PACKAGE_TARNAME", ""},
	{"PACKAGE_NAME", ""},
	{"PATH_SEPARATOR", ":"},
	{"SHELL", "/bin/sh"},
	{keySDKRoot, ""},
	{"archdir", "$(rubyarchdir)"},
	{keyTopDir, ""},
}
