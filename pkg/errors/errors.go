package errors

import "fmt"

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenNotYetValid     = fmt.Errorf("токен ещё не активен")

	// Авторизация
	ErrEmptyAuthHeader       = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader     = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidBootstrapToken = fmt.Errorf("неверный bootstrap-токен")

	// Контекст
	ErrIdentityNotFoundInContext = fmt.Errorf("IdentityID не найден в контексте запроса")

	// Домен оборудования
	ErrNotFound       = fmt.Errorf("запись не найдена")
	ErrEquipmentInUse = fmt.Errorf("оборудование выдано и не может быть удалено")
	ErrDeleteDisabled = fmt.Errorf("удаление оборудования отключено")
	ErrEmptyNumber    = fmt.Errorf("номер оборудования не может быть пустым")
	ErrEmptyLocation  = fmt.Errorf("локация не может быть пустой")
)

// HttpError - ошибка с HTTP-статусом, которую utils.ErrorResponse умеет
// превращать в ответ клиенту.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}
