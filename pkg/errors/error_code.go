package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeValidationFailed     ErrorCode = 102
	ErrCodeMissingField         ErrorCode = 103
	ErrCodeInvalidNumber        ErrorCode = 104
	ErrCodeNegativeLotSize      ErrorCode = 105
	ErrCodeReferenceNotFound    ErrorCode = 106
	ErrCodeInvalidAccount       ErrorCode = 107
	ErrCodeInvalidAsset         ErrorCode = 108

	// Ledger errors (200-299)
	ErrCodePersistenceFailed ErrorCode = 200
	ErrCodeEntryNotFound     ErrorCode = 201
	ErrCodeQueryFailed       ErrorCode = 202
	ErrCodeStoreInitFailed   ErrorCode = 203
	ErrCodeExportFailed      ErrorCode = 204
	ErrCodeDuplicateEntry    ErrorCode = 205

	// Directory errors (300-399)
	ErrCodeAccountNotFound      ErrorCode = 300
	ErrCodeAssetNotFound        ErrorCode = 301
	ErrCodeAccountAlreadyExists ErrorCode = 302
	ErrCodeAssetAlreadyExists   ErrorCode = 303

	// Statistics errors (400-499)
	ErrCodeAggregationFailed ErrorCode = 400
	ErrCodeInvalidGrouping   ErrorCode = 401
	ErrCodeInvalidLimit      ErrorCode = 402

	// Server errors (500-599)
	ErrCodeBadRequest          ErrorCode = 500
	ErrCodeSerializationFailed ErrorCode = 501
	ErrCodeServerStartFailed   ErrorCode = 502

	// Batch errors (600-699)
	ErrCodeEmptyBatch     ErrorCode = 600
	ErrCodeBatchTooLarge  ErrorCode = 601
	ErrCodeImportFailed   ErrorCode = 602
	ErrCodeImportBadInput ErrorCode = 603
)
