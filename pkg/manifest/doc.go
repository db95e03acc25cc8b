// Package manifest parses mod manifest files (conventionally <modname>.mod).
//
// A manifest is line-oriented text of key=value pairs:
//
//	name = "Foo"
//	path = "mod/Foo"
//	dependencies = { "Base", "Other" }
//	user_dir = "foo"
//	github = "https://github.com/example/foo"
//	version = "1.2"
//
// Lines starting with # or // are comments. Lines without '=' and unknown
// keys are ignored. A manifest without a name does not describe a mod.
package manifest
