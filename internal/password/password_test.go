package password

import (
	"strings"
	"testing"

	"github.com/mzaglia/passmint/internal/errors"
)

func TestGenerate_LengthAndClassCoverage(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
	}{
		{"all classes", Criteria{Length: 12, Uppercase: true, Numbers: true, Special: true}},
		{"lowercase only", Criteria{Length: 12}},
		{"no special", Criteria{Length: 16, Uppercase: true, Numbers: true}},
		{"no uppercase", Criteria{Length: 10, Numbers: true, Special: true}},
		{"minimum length", Criteria{Length: 8, Uppercase: true, Numbers: true, Special: true}},
		{"maximum length", Criteria{Length: 128, Uppercase: true, Numbers: true, Special: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := Generate(tt.criteria)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			if len(pw) != tt.criteria.Length {
				t.Errorf("length = %d, want %d", len(pw), tt.criteria.Length)
			}
			if !strings.ContainsAny(pw, Lowercase) {
				t.Error("password missing lowercase character")
			}
			if tt.criteria.Uppercase && !strings.ContainsAny(pw, Uppercase) {
				t.Error("password missing uppercase character")
			}
			if tt.criteria.Numbers && !strings.ContainsAny(pw, Digits) {
				t.Error("password missing digit")
			}
			if tt.criteria.Special && !strings.ContainsAny(pw, Special) {
				t.Error("password missing special character")
			}
		})
	}
}

func TestGenerate_OnlyEnabledClasses(t *testing.T) {
	// With all flags off, every character must be lowercase.
	for i := 0; i < 20; i++ {
		pw, err := Generate(Criteria{Length: 12})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		for _, r := range pw {
			if !strings.ContainsRune(Lowercase, r) {
				t.Fatalf("password %q contains %q outside the lowercase class", pw, r)
			}
		}
	}
}

func TestGenerate_NoSpecialAlphabet(t *testing.T) {
	allowed := Lowercase + Uppercase + Digits
	for i := 0; i < 20; i++ {
		pw, err := Generate(Criteria{Length: 20, Uppercase: true, Numbers: true})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		for _, r := range pw {
			if !strings.ContainsRune(allowed, r) {
				t.Fatalf("password %q contains disallowed character %q", pw, r)
			}
		}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	for _, length := range []int{-1, 0, 7, 129, 1000} {
		_, err := Generate(Criteria{Length: length, Uppercase: true})
		if err == nil {
			t.Errorf("length %d: expected error, got nil", length)
			continue
		}
		perr, ok := err.(*errors.Error)
		if !ok || perr.Code != errors.ErrInvalidCriteria {
			t.Errorf("length %d: expected INVALID_CRITERIA, got %v", length, err)
		}
	}
}

func TestGenerate_NotConstant(t *testing.T) {
	// Two draws colliding on a 32-character password would indicate a broken
	// random source.
	c := Criteria{Length: 32, Uppercase: true, Numbers: true, Special: true}
	a, err := Generate(c)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(c)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if a == b {
		t.Errorf("two generated passwords are identical: %q", a)
	}
}

func TestValidate(t *testing.T) {
	if err := (Criteria{Length: 8}).Validate(); err != nil {
		t.Errorf("length 8 should be valid: %v", err)
	}
	if err := (Criteria{Length: 128}).Validate(); err != nil {
		t.Errorf("length 128 should be valid: %v", err)
	}
	if err := (Criteria{Length: 7}).Validate(); err == nil {
		t.Error("length 7 should be invalid")
	}
}

func TestDefaultCriteria(t *testing.T) {
	c := DefaultCriteria()
	if c.Length != 12 || !c.Uppercase || !c.Numbers || !c.Special {
		t.Errorf("unexpected defaults: %+v", c)
	}
}
