package crypto

import "fmt"

// UserSalt builds the master-key salt: namespace || len(identity) || identity.
// Lengths are UTF-8 byte counts.
func UserSalt(p Profile, identity string) ([]byte, error) {
	if identity == "" {
		return nil, fmt.Errorf("%w: identity", ErrEmptyField)
	}

	salt := make([]byte, 0, len(p.Namespace)+p.IntWidth+len(identity))
	salt = append(salt, p.Namespace...)
	return appendField(p, salt, identity)
}

// SiteSeed builds the site-key message:
//
//	scope || len(name) || name || counter [|| len(context) || context]
//
// The context field is only present for ScopeRecovery with a non-empty
// context, so an irrelevant context never changes a password or login.
func SiteSeed(p Profile, scope Scope, name string, counter uint32, context string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: site name", ErrEmptyField)
	}
	if counter == 0 {
		return nil, ErrInvalidCounter
	}

	scopeName := p.ScopeName(scope)
	seed := make([]byte, 0, len(scopeName)+3*p.IntWidth+len(name)+len(context))
	seed = append(seed, scopeName...)

	seed, err := appendField(p, seed, name)
	if err != nil {
		return nil, err
	}
	if seed, err = p.appendInt(seed, uint64(counter)); err != nil {
		return nil, err
	}

	if scope == ScopeRecovery && context != "" {
		if seed, err = appendField(p, seed, context); err != nil {
			return nil, err
		}
	}

	return seed, nil
}

func appendField(p Profile, b []byte, field string) ([]byte, error) {
	b, err := p.appendInt(b, uint64(len(field)))
	if err != nil {
		return nil, err
	}
	return append(b, field...), nil
}
