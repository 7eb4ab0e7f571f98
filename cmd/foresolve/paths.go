package main

import "strings"

// defaultCNFPath and defaultReportPath derive output file names from
// the input path by suffix substitution — the convention the original
// CLI used for naming its generated artifacts (SPEC_FULL.md "File
// naming convention for the three artifacts"). spec.md leaves path
// conventions out of scope; this is purely a CLI default, overridden
// by --cnf-out/--report-out.
func defaultCNFPath(inputPath string) string { return replaceOrAppendExt(inputPath, ".cnf") }

func defaultReportPath(inputPath string) string { return replaceOrAppendExt(inputPath, ".result") }

func replaceOrAppendExt(path, newExt string) string {
	dot := strings.LastIndex(path, ".")
	slash := strings.LastIndexAny(path, `/\`)
	if dot > slash {
		return path[:dot] + newExt
	}
	return path + newExt
}
