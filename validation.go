package logging

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func sharedValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func validateFilePath(path string) error {
	if err := sharedValidator().Var(path, "required"); err != nil {
		return fmt.Errorf("invalid log file path %q: %w", path, err)
	}
	return nil
}
