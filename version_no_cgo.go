//go:build !cgo

package relay

func librelaycoreVersionImpl() (string, error) {
	return "", ErrNotLinked
}
