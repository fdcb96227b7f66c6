package model

// User A generated identity granting access to one bound bookstore instance.
type User struct {
	Username    string
	Password    string
	Authorities []string
}
