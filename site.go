package mpw

// Site describes one credential to derive. Build it with NewSite, which
// applies defaults and rejects illegal combinations.
type Site struct {
	Name    string
	Counter uint32
	Variant Variant
	Type    ResultType
	Context string
}

// NewSite returns a validated Site for name.
func NewSite(name string, opts ...SiteOption) (*Site, error) {
	cfg := &siteConfig{
		counter: DefaultCounter,
		variant: VariantPassword,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.variant.valid() {
		return nil, &ValidationError{Field: "variant", Value: cfg.variant.String(), Err: ErrUnknownVariant}
	}
	if !cfg.typeSet {
		t, err := DefaultResultType(cfg.variant)
		if err != nil {
			return nil, err
		}
		cfg.resultType = t
	}

	site := &Site{
		Name:    name,
		Counter: cfg.counter,
		Variant: cfg.variant,
		Type:    cfg.resultType,
		Context: cfg.context,
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}

// Validate checks the site against the input rules. Derive calls it, so a
// Site built by hand is held to the same rules as one from NewSite.
func (s *Site) Validate() error {
	if s == nil || s.Name == "" {
		return &ValidationError{Field: "site name", Err: ErrEmptySiteName}
	}
	if s.Counter == 0 {
		return &ValidationError{Field: "counter", Value: "0", Err: ErrInvalidCounter}
	}
	if !s.Variant.valid() {
		return &ValidationError{Field: "variant", Value: s.Variant.String(), Err: ErrUnknownVariant}
	}
	if !s.Type.valid() {
		return &ValidationError{Field: "type", Value: s.Type.String(), Err: ErrUnknownType}
	}
	if !Defined(s.Variant, s.Type) {
		return &ValidationError{
			Field: "type",
			Value: s.Type.String() + " for " + s.Variant.String(),
			Err:   ErrUndefinedCombination,
		}
	}
	return nil
}

// seedContext returns the context that takes part in the seed. Only answers
// carry one.
func (s *Site) seedContext() string {
	if s.Variant != VariantAnswer {
		return ""
	}
	return s.Context
}
