package respond

import "regexp"

var (
	// user:password@ in URL style DSNs
	dsnPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)
	// password=... in keyword/value DSNs
	kvPasswordPattern = regexp.MustCompile(`(?i)(password=)(\S+)`)
)

// SanitizeError returns err's message with database passwords masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	msg = dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = kvPasswordPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
