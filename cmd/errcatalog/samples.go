package main

import imerrors "github.com/btakita/import-meta-resolve"

// sampleArgs holds plausible raise-site arguments for every builtin code,
// used by check to exercise each rule and by explain to render a sample.
var sampleArgs = map[imerrors.Code][]any{
	"ERR_INVALID_ARG_TYPE":           {"specifier", []string{"string"}, 42},
	"ERR_INVALID_ARG_VALUE":          {"conditions", []string{"best"}, "is not supported"},
	"ERR_INVALID_MODULE_SPECIFIER":   {"./x", "is not a valid path", "/srv/app/main.js"},
	"ERR_INVALID_PACKAGE_CONFIG":     {"/srv/app/node_modules/dep/package.json", "/srv/app/main.js", "Unexpected token"},
	"ERR_INVALID_PACKAGE_TARGET":     {"/srv/app/node_modules/dep/", "./feature", "lib/feature.js"},
	"ERR_MODULE_NOT_FOUND":           {"/srv/app/lib/missing.js", "/srv/app/main.js", true},
	"ERR_NETWORK_IMPORT_DISALLOWED":  {"https://cdn.example/mod.js", "/srv/app/main.js", "http can only be used to load local resources"},
	"ERR_PACKAGE_IMPORT_NOT_DEFINED": {"#feature", "/srv/app/", "/srv/app/main.js"},
	"ERR_PACKAGE_PATH_NOT_EXPORTED":  {"/srv/app/node_modules/dep/", "./internal", "/srv/app/main.js"},
	"ERR_UNSUPPORTED_DIR_IMPORT":     {"/srv/app/lib", "/srv/app/main.js"},
	"ERR_UNKNOWN_FILE_EXTENSION":     {".xyz", "/srv/app/lib/data.xyz"},
	"ERR_UNSUPPORTED_ESM_URL_SCHEME": {"c:", []string{"file", "data"}},
}

// argsFor returns curated sample arguments when available, falling back
// to arity-correct generic strings so late-registered codes still check.
func argsFor(d imerrors.Descriptor) []any {
	if args, ok := sampleArgs[d.Code]; ok {
		return args
	}
	out := make([]any, d.Arity)
	for i := range out {
		out[i] = "sample"
	}
	return out
}
