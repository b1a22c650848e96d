package validators

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/localtime"
)

// Register instala a validação "clocktime" no binding do gin, usada
// nos campos de horário dos requests ("15:04"). Campo vazio passa;
// obrigatoriedade é papel da tag required.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return localtime.IsClock(s)
	})
}
