//go:build !sqlite

package archive

import "fmt"

func DefaultStoreKind() string {
	return "memory"
}

func newSQLiteStore(_ string) (Store, error) {
	return nil, fmt.Errorf("sqlite backend unavailable in this build; rebuild with -tags sqlite")
}
