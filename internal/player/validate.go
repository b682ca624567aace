package player

import "regexp"

// The link/ID shapes accepted here mirror the platform's registration form
// and must not be loosened without a coordinated client change.
var (
	upiLinkRegex = regexp.MustCompile(`(?i)^(https?://)?(www\.)?(upi\.link/|paytm\.me/|phonepe\.me/|gpay\.me/)`)
	upiIDRegex   = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+$`)
	youtubeRegex = regexp.MustCompile(`(?i)^(https?://)?(www\.)?(youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)[\w-]+`)
)

// ValidUPILink reports whether the value is a payment link on a known UPI
// app domain, or a bare UPI ID of localpart@domain shape. Empty is valid:
// the field is optional.
func ValidUPILink(upiLink string) bool {
	if upiLink == "" {
		return true
	}
	return upiLinkRegex.MatchString(upiLink) || upiIDRegex.MatchString(upiLink)
}

// ValidYouTubeURL reports whether the value matches one of the standard
// watch/short/embed URL shapes. Empty is valid: the field is optional.
func ValidYouTubeURL(url string) bool {
	if url == "" {
		return true
	}
	return youtubeRegex.MatchString(url)
}
