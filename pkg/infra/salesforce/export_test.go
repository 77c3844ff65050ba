package salesforce

var (
	ExtractZipForTest      = extractZip
	SanitizeZipPathForTest = sanitizeZipPath
	RetrieveRequestForTest = retrieveRequestBody
)
