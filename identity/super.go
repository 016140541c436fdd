package identity

// Super holds the single platform-wide credential. The pair comes from
// configuration at startup and is hashed immediately so the plaintext is
// not kept around.
type Super struct {
	username string
	hash     string
}

func NewSuper(username, password string) (*Super, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &Super{username: username, hash: hash}, nil
}

// Authenticate checks the pair against the configured credential.
func (s *Super) Authenticate(username, password string) bool {
	return username == s.username && CheckPassword(s.hash, password)
}

// Username returns the configured super-admin username.
func (s *Super) Username() string { return s.username }
