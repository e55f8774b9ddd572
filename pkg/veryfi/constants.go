package veryfi

import "time"

const (
	// BaseURL is the production API endpoint.
	BaseURL = "https://api.veryfi.com/api/"
	// APIVersion is the API version segment appended to the base URL.
	APIVersion = "v7"
	// APITimeout is the service's documented per-call budget.
	APITimeout = 120 * time.Second
	// MaxFileSizeMB is the largest document the service accepts.
	MaxFileSizeMB = 20

	userAgent = "Go Veryfi-Go/0.1"

	headerTimestamp = "X-Veryfi-Request-Timestamp"
	headerSignature = "X-Veryfi-Request-Signature"
)

// Categories is the default taxonomy applied when a document is submitted
// without caller-supplied categories.
var Categories = []string{
	"Advertising & Marketing",
	"Automotive",
	"Bank Charges & Fees",
	"Legal & Professional Services",
	"Insurance",
	"Meals & Entertainment",
	"Office Supplies & Software",
	"Taxes & Licenses",
	"Travel",
	"Rent & Lease",
	"Repairs & Maintenance",
	"Payroll",
	"Utilities",
	"Job Supplies",
	"Grocery",
}

func defaultCategories() []string {
	out := make([]string, len(Categories))
	copy(out, Categories)
	return out
}
