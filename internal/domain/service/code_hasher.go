package service

// CodeHasher hashes verification codes for at-rest storage and compares
// submitted codes against the stored hash.
type CodeHasher interface {
	Hash(code string) (string, error)
	Compare(hash, code string) bool
}
