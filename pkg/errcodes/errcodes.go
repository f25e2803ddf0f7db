package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	InvalidQuoteRequest failure.ErrorCode = "InvalidQuoteRequest"
	InvalidLiability    failure.ErrorCode = "InvalidLiability"
	InvalidQuote        failure.ErrorCode = "InvalidQuote"
	VendorNotConfigured failure.ErrorCode = "VendorNotConfigured"
	VendorUnavailable   failure.ErrorCode = "VendorUnavailable"
	VendorBadResponse   failure.ErrorCode = "VendorBadResponse"
	VendorAuthFailed    failure.ErrorCode = "VendorAuthFailed"
)
