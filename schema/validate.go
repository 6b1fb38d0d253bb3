package schema

import "github.com/katalvlaran/dataverify/verifier"

// Validate checks that root is a well-formed Branch: every field has a
// unique non-empty name and a non-nil leaf or branch, recursively.
//
// It is a configuration check, independent of any input data. Failures are
// *fault.Error values of KindSchemaInvalid.
// Complexity: O(total fields).
func Validate(root Node) error {
	b, ok := root.(Branch)
	if !ok {
		if root == nil {
			return invalid(ErrNotBranch, "got nil")
		}
		return invalid(ErrNotBranch, "got %T", root)
	}

	return validateBranch(b, "")
}

func validateBranch(b Branch, path string) error {
	seen := make(map[string]struct{}, len(b))
	for i, f := range b {
		at := join(path, f.Name)
		if f.Name == "" {
			return invalid(ErrEmptyName, "field #%d of %q", i, displayPath(path))
		}
		if _, dup := seen[f.Name]; dup {
			return invalid(ErrDuplicateName, "%q", at)
		}
		seen[f.Name] = struct{}{}

		switch n := f.Node.(type) {
		case Branch:
			if err := validateBranch(n, at); err != nil {
				return err
			}
		case *verifier.Verifier:
			if n == nil {
				return invalid(ErrNilNode, "%q", at)
			}
		case nil:
			return invalid(ErrNilNode, "%q", at)
		default:
			return invalid(ErrUnknownNode, "%q holds %T", at, n)
		}
	}

	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}

func displayPath(path string) string {
	if path == "" {
		return "<root>"
	}

	return path
}
