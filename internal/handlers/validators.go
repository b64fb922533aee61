package handlers

import (
	"fmt"
	"sync"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the simnumber and nationalid tags to gin's validator.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err = v.RegisterValidation("simnumber", func(fl validator.FieldLevel) bool {
			return domain.ValidSimNumber(fl.Field().String())
		}); err != nil {
			return
		}
		err = v.RegisterValidation("nationalid", func(fl validator.FieldLevel) bool {
			return domain.ValidNationalID(fl.Field().String())
		})
	})
	return err
}
