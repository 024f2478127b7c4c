package backup

import "fmt"

// MaxDomainLength bounds the length of a domain identifier.
const MaxDomainLength = 255

// Domain identifies the application or subsystem that owns a file within a
// backup, such as "AppDomain-com.example.notes".
type Domain struct {
	value string
}

// NewDomain validates a domain identifier: non-empty and at most 255
// characters.
func NewDomain(domain string) (Domain, error) {
	if domain == "" {
		return Domain{}, fmt.Errorf("domain cannot be empty")
	}
	if len(domain) > MaxDomainLength {
		return Domain{}, fmt.Errorf("domain cannot be longer than %d characters, got %d", MaxDomainLength, len(domain))
	}
	return Domain{value: domain}, nil
}

// Value returns the domain string.
func (d Domain) Value() string {
	return d.value
}

func (d Domain) String() string {
	return d.value
}
