package vault

import "errors"

var (
	// ErrNoWallet is returned when there is no wallet key file to connect with
	ErrNoWallet = errors.New("no wallet found: create one with `impactvault keygen`")
	// ErrConnectFailed wraps every other connect failure
	ErrConnectFailed = errors.New("wallet connection failed")
	// ErrNotConnected is returned by real contract actions before Connect
	ErrNotConnected = errors.New("wallet not connected")
	// ErrContractNotConfigured is returned when real mode is requested with the zero contract address
	ErrContractNotConfigured = errors.New("vault contract address not configured: set VAULT_CONTRACT_ADDRESS")
	// ErrWrongMode is returned by chain reads while mock mode is on
	ErrWrongMode = errors.New("not available in mock mode")
	// ErrNoPassword is returned when the server holds no wallet password
	ErrNoPassword = errors.New("wallet password not set: restart the server to enter it")
)

// InputError is a validation failure the user can fix by changing the input
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// IsInputError checks if error is InputError
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// FileExistsError is an error when file already exists and is not empty
type FileExistsError struct {
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var fe *FileExistsError
	return errors.As(err, &fe)
}
