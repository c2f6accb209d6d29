package services

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"restoration-admin-backend/internal/models"
)

const deliverySubject = "YOUR RESTORED PHOTO"

const deliveryBody = `Hello, %s!

We are delighted to deliver the restored version of your photo.
We worked carefully to preserve the memories and details that make this image so special.

Please find the restored photo attached.
If you would like any adjustment or have a question, just reply to this email. We are here to make sure you are 100%% satisfied!

Thank you for trusting our work.
Keeping your story alive is what drives us.

Best regards,
%s

Restoring Memories with Love`

const whatsAppGreeting = "Hello %s! Reaching out about your image restoration order."

// ContactLinks builds the staff-facing mailto and WhatsApp links.
type ContactLinks struct {
	brand       string
	countryCode string
}

func NewContactLinks(brand, countryCode string) *ContactLinks {
	return &ContactLinks{brand: brand, countryCode: countryCode}
}

func (c *ContactLinks) Mailto(r models.RestorationRequest) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		r.CustomerEmail,
		encodeComponent(deliverySubject),
		encodeComponent(fmt.Sprintf(deliveryBody, r.CustomerName, c.brand)),
	)
}

// WhatsApp returns false when the request has no usable phone number.
func (c *ContactLinks) WhatsApp(r models.RestorationRequest) (string, bool) {
	if r.CustomerPhone == nil {
		return "", false
	}
	phone := FormatPhoneForWhatsApp(*r.CustomerPhone, c.countryCode)
	if phone == "" {
		return "", false
	}
	text := encodeComponent(fmt.Sprintf(whatsAppGreeting, r.CustomerName))
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, text), true
}

// FormatPhoneForWhatsApp keeps only digits and prefixes countryCode unless
// the number already starts with it.
func FormatPhoneForWhatsApp(phone, countryCode string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, countryCode) {
		return digits
	}
	return countryCode + digits
}

// encodeComponent escapes s for use inside a URL query value, with spaces as
// %20 so mail clients do not show literal plus signs.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
