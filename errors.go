package bufkvs

// KeyNotFound - Custom error to inform that the key was not found in the set
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that the key was not found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// CeilingReached - Custom error to inform that the set already holds the
// configured maximum number of key/value pairs and can't take more
type CeilingReached struct {
	msg string
}

// Error - Used to notify that the pair ceiling is reached
func (E CeilingReached) Error() string {
	if E.msg == "" {
		return "pair ceiling reached"
	}
	return E.msg
}
