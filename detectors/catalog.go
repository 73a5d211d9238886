package detectors

import "github.com/ourovoros-io/sway-analyzer-go/detect"

// Catalog returns the compile-time name -> factory table the host
// resolves detector selections against (§6 "detectors: [name]"). Adding a
// detector to the analyzer means adding both an implementation and an
// entry here; a name outside this table is always an
// errs.UnknownDetector, resolved before any file is opened.
func Catalog() map[string]detect.Factory {
	return map[string]detect.Factory{
		"arbitrary-asset-transfer":       detect.Factory(NewArbitraryAssetTransfer),
		"arbitrary-code-execution":       detect.Factory(NewArbitraryCodeExecution),
		"boolean-comparison":             detect.Factory(NewBooleanComparison),
		"discarded-assignment":           detect.Factory(NewDiscardedAssignment),
		"division-before-multiplication": detect.Factory(NewDivisionBeforeMultiplication),
		"external-call-in-loop":          detect.Factory(NewExternalCallInLoop),
		"large-literal":                  detect.Factory(NewLargeLiteral),
		"locked-native-asset":            detect.Factory(NewLockedNativeAsset),
		"magic-number":                   detect.Factory(NewMagicNumber),
		"missing-logs":                   detect.Factory(NewMissingLogs),
		"msg-amount-in-loop":             detect.Factory(NewMsgAmountInLoop),
		"non-zero-identity-validation":   detect.Factory(NewNonZeroIdentityValidation),
		"potential-infinite-loop":        detect.Factory(NewPotentialInfiniteLoop),
		"redundant-comparison":           detect.Factory(NewRedundantComparison),
		"redundant-storage-access":       detect.Factory(NewRedundantStorageAccess),
		"storage-field-mutability":       detect.Factory(NewStorageFieldMutability),
		"storage-not-updated":            detect.Factory(NewStorageNotUpdated),
		"strict-equality":                detect.Factory(NewStrictEquality),
		"unchecked-call-payload":         detect.Factory(NewUncheckedCallPayload),
		"unprotected-initialization":     detect.Factory(NewUnprotectedInitialization),
		"unused-import":                  detect.Factory(NewUnusedImport),
		"weak-prng":                      detect.Factory(NewWeakPrng),
	}
}
