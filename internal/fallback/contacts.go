package fallback

import (
	"regexp"
	"strings"

	"github.com/arnav-deshpande/kalakaar/internal/entity"
)

// Phone patterns are tried in order and all hits are unioned. Numbers
// matched by more than one pattern appear more than once; callers that
// care must de-duplicate themselves.
var phonePatterns = []*regexp.Regexp{
	// Indian mobile, leading 6-9, optional +91
	regexp.MustCompile(`(?:\+?91[-.\s]?)?[6-9]\d{9}`),
	// US-style grouped
	regexp.MustCompile(`(?:\+?1[-.\s]?)?[2-9]\d{2}[-.\s]?\d{3}[-.\s]?\d{4}`),
	// loose international
	regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}`),
}

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// Per-platform patterns. URL forms are tried before bare @handles so that
// the user part of an email address is never mistaken for a handle.
type socialPattern struct {
	platform string
	urls     *regexp.Regexp
	handle   *regexp.Regexp
}

var socialPatterns = []socialPattern{
	{"instagram",
		regexp.MustCompile(`(?i)instagram\.com/([a-zA-Z0-9_.]+)`),
		regexp.MustCompile(`(?:^|[^A-Za-z0-9._])@([a-zA-Z0-9_.]+)`)},
	{"facebook",
		regexp.MustCompile(`(?i)facebook\.com/([a-zA-Z0-9.]+)`), nil},
	{"twitter",
		regexp.MustCompile(`(?i)twitter\.com/([a-zA-Z0-9_]+)`),
		regexp.MustCompile(`(?:^|[^A-Za-z0-9._])@([a-zA-Z0-9_]+)`)},
	{"youtube",
		regexp.MustCompile(`(?i)youtube\.com/(?:channel/|user/|c/)?([a-zA-Z0-9_-]+)`), nil},
	{"linkedin",
		regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9-]+)`), nil},
	{"spotify",
		regexp.MustCompile(`(?i)spotify\.com/artist/([a-zA-Z0-9]+)`), nil},
	{"tiktok",
		regexp.MustCompile(`(?i)tiktok\.com/@([a-zA-Z0-9_.]+)`), nil},
}

var websitePattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?([a-zA-Z0-9-]+\.[a-zA-Z]{2,}(?:/[^\s]*)?)`)

var socialDomains = []string{
	"instagram.com", "facebook.com", "twitter.com", "youtube.com",
	"linkedin.com", "spotify.com", "tiktok.com",
}

var addressKeywords = []string{"address", "located at", "based in", "residing in"}

// ExtractContacts pulls phones, emails, social handles, a website, and an
// address line out of raw text. Pure and deterministic; a miss yields
// nulls, never an error.
func ExtractContacts(text string) *entity.ContactDetails {
	var phones []string
	for _, p := range phonePatterns {
		phones = append(phones, p.FindAllString(text, -1)...)
	}
	emails := emailPattern.FindAllString(text, -1)

	var social entity.SocialMedia
	for _, sp := range socialPatterns {
		if m := sp.urls.FindStringSubmatch(text); m != nil {
			setPlatform(&social, sp.platform, m[1])
			continue
		}
		if sp.handle != nil {
			if m := sp.handle.FindStringSubmatch(text); m != nil {
				setPlatform(&social, sp.platform, m[1])
			}
		}
	}

	var website *string
	for _, m := range websitePattern.FindAllStringSubmatch(text, -1) {
		site := m[1]
		if isSocialDomain(site) {
			continue
		}
		if !strings.HasPrefix(site, "http") {
			site = "https://" + site
		}
		website = &site
		break
	}

	var address *entity.Address
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, kw := range addressKeywords {
			if strings.Contains(lower, kw) {
				full := strings.TrimSpace(line)
				address = &entity.Address{FullAddress: &full}
				break
			}
		}
		if address != nil {
			break
		}
	}

	ci := entity.ContactInfo{
		PhoneNumbers: phones,
		Emails:       emails,
		Website:      website,
	}
	if len(phones) > 0 {
		ci.Phone = &phones[0]
	}
	if len(emails) > 0 {
		ci.Email = &emails[0]
	}

	return &entity.ContactDetails{
		SocialMedia: social,
		ContactInfo: ci,
		Address:     address,
	}
}

func setPlatform(s *entity.SocialMedia, platform, value string) {
	v := value
	switch platform {
	case "instagram":
		s.Instagram = &v
	case "facebook":
		s.Facebook = &v
	case "twitter":
		s.Twitter = &v
	case "youtube":
		s.YouTube = &v
	case "linkedin":
		s.LinkedIn = &v
	case "spotify":
		s.Spotify = &v
	case "tiktok":
		s.TikTok = &v
	}
}

func isSocialDomain(site string) bool {
	lower := strings.ToLower(site)
	for _, d := range socialDomains {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}
