package mpw

import "testing"

func TestDefaultCounter(t *testing.T) {
	if DefaultCounter != 1 {
		t.Errorf("DefaultCounter = %d, want 1", DefaultCounter)
	}
}

func TestWithCounter(t *testing.T) {
	cfg := &siteConfig{}
	WithCounter(42)(cfg)
	if cfg.counter != 42 {
		t.Errorf("counter = %d, want 42", cfg.counter)
	}
}

func TestWithVariant(t *testing.T) {
	tests := []struct {
		variant Variant
	}{
		{VariantPassword},
		{VariantLogin},
		{VariantAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			cfg := &siteConfig{}
			WithVariant(tt.variant)(cfg)
			if cfg.variant != tt.variant {
				t.Errorf("variant = %s, want %s", cfg.variant, tt.variant)
			}
		})
	}
}

func TestWithResultType(t *testing.T) {
	cfg := &siteConfig{}
	if cfg.typeSet {
		t.Fatal("typeSet should start false")
	}

	WithResultType(TypeMaximum)(cfg)
	if cfg.resultType != TypeMaximum {
		t.Errorf("resultType = %s, want maximum", cfg.resultType)
	}
	if !cfg.typeSet {
		t.Error("typeSet = false after WithResultType(TypeMaximum)")
	}
}

func TestWithContext(t *testing.T) {
	cfg := &siteConfig{}
	WithContext("mother's maiden name")(cfg)
	if cfg.context != "mother's maiden name" {
		t.Errorf("context = %s, want mother's maiden name", cfg.context)
	}
}
