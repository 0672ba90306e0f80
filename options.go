package mpw

const (
	// DefaultCounter is the counter used when none is requested.
	DefaultCounter uint32 = 1
)

// siteConfig holds configuration for site construction.
type siteConfig struct {
	counter    uint32
	variant    Variant
	resultType ResultType
	typeSet    bool
	context    string
}

// SiteOption configures a Site.
type SiteOption func(*siteConfig)

// WithCounter sets the site counter. Distinct counters give independent
// credentials for the same site; 0 is reserved.
// Default: 1
func WithCounter(counter uint32) SiteOption {
	return func(c *siteConfig) {
		c.counter = counter
	}
}

// WithVariant sets the purpose of the credential.
// Default: VariantPassword
func WithVariant(variant Variant) SiteOption {
	return func(c *siteConfig) {
		c.variant = variant
	}
}

// WithResultType sets the requested shape of the credential.
// Default: TypeLong for passwords, TypeName for logins. Answers require it.
func WithResultType(t ResultType) SiteOption {
	return func(c *siteConfig) {
		c.resultType = t
		c.typeSet = true
	}
}

// WithContext sets the variant-specific context. Only answers use it: empty
// gives a universal site answer, otherwise it names the security question.
func WithContext(context string) SiteOption {
	return func(c *siteConfig) {
		c.context = context
	}
}
