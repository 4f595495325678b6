// Package validation は参加登録の入力を検証します。
//
// ValidateRegistration は API 側の検証で、各項目が存在し文字列であることだけを確認します。
// ValidateForm は登録フォームが送信前に行う、より厳しい検証と同じ規則を適用します。
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"pizzapension/internal/models"
)

// FieldError は一つの入力項目のエラーです
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error は一回の送信で見つかった項目エラーを入力順にまとめます
type Error struct {
	Fields []FieldError `json:"errors"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s at %q", f.Message, f.Field))
	}
	return "Validation error: " + strings.Join(parts, "; ")
}

// Has は field にエラーがあるかを返します
func (e *Error) Has(field string) bool {
	return e.For(field) != ""
}

// For は field の最初のメッセージを返します。なければ空文字列です
func (e *Error) For(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

func (e *Error) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// RegistrationFields は送信される項目をフォームの順に並べたものです
var RegistrationFields = []string{"firstName", "lastName", "email", "pizza", "drink"}

// Options は ValidateRegistration の動作を調整します
type Options struct {
	// EnforceMenu が true なら models.PizzaMenu にないピザを拒否します
	EnforceMenu bool
}

// ValidateRegistration はデコード済みの任意のボディを検証し、登録項目を返します。
// 未知のキーと id、createdAt は無視します
func ValidateRegistration(input map[string]any, opts Options) (models.NewRegistration, error) {
	verr := &Error{}
	values := make(map[string]string, len(RegistrationFields))

	for _, field := range RegistrationFields {
		raw, ok := input[field]
		if !ok || raw == nil {
			verr.add(field, "Required")
			continue
		}
		s, ok := raw.(string)
		if !ok {
			verr.add(field, "Expected string, received "+typeName(raw))
			continue
		}
		values[field] = s
	}

	if opts.EnforceMenu {
		if p, ok := values["pizza"]; ok && !models.OnMenu(p) {
			verr.add("pizza", "Invalid pizza, expected one of "+strings.Join(models.PizzaMenu, ", "))
		}
	}

	if len(verr.Fields) > 0 {
		return models.NewRegistration{}, verr
	}

	return models.NewRegistration{
		FirstName: values["firstName"],
		LastName:  values["lastName"],
		Email:     values["email"],
		Pizza:     values["pizza"],
		Drink:     values["drink"],
	}, nil
}

func typeName(v any) string {
	switch v.(type) {
	case float64, int, int64, float32, int32:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return reflect.TypeOf(v).Kind().String()
	}
}

type formInput struct {
	FirstName string `json:"firstName" validate:"notblank"`
	LastName  string `json:"lastName" validate:"notblank"`
	Email     string `json:"email" validate:"notblank,email"`
	Pizza     string `json:"pizza" validate:"notblank,menu"`
	Drink     string `json:"drink" validate:"notblank"`
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("menu", func(fl validator.FieldLevel) bool {
		return models.OnMenu(fl.Field().String())
	})
	return v
}

var formMessages = map[string]string{
	"notblank": "Fältet är obligatoriskt",
	"email":    "Ange en giltig e-postadress",
	"menu":     "Välj en pizza från menyn",
}

// ValidateForm は登録フォームの規則を適用します。
// 全項目の入力、正しいメールアドレス、メニューにあるピザを要求し、nil か *Error を返します
func ValidateForm(r models.NewRegistration) error {
	in := formInput{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Email:     strings.TrimSpace(r.Email),
		Pizza:     r.Pizza,
		Drink:     strings.TrimSpace(r.Drink),
	}

	err := formValidator.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &Error{}
	for _, fe := range verrs {
		msg, ok := formMessages[fe.Tag()]
		if !ok {
			msg = "Ogiltigt värde"
		}
		out.add(fe.Field(), msg)
	}
	return out
}
