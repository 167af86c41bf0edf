package ir

import "golang.org/x/text/unicode/norm"

// CanonicalName normalizes an identifier to NFC so that two textually
// equivalent but differently-composed Unicode names (a precomposed accented
// letter versus its decomposed combining-mark form) land on the same
// typeMap/module key. Every globalName, module name, and typealias name
// passes through this before it is used as a map key.
func CanonicalName(name string) string {
	if norm.NFC.IsNormalString(name) {
		return name
	}
	return norm.NFC.String(name)
}
