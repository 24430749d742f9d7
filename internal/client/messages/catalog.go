package messages

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	keyEmailInUse               = "email_in_use"
	keyInvalidCredentials       = "invalid_credentials"
	keyCurrentPasswordIncorrect = "current_password_incorrect"
	keyPasswordIncorrect        = "password_incorrect"
	keyUserNotFound             = "user_not_found"
	keyNewPasswordSame          = "new_password_same"
	keySessionExpired           = "session_expired"
	keyForbidden                = "forbidden"
	keyResourceNotFound         = "resource_not_found"
	keyCheckData                = "check_data"
	keyConnection               = "connection"
	keyInvalidResponse          = "invalid_response"
	keyInvalidData              = "invalid_data"
	keyNotFound                 = "not_found"
	keyConflict                 = "conflict"
	keyServerError              = "server_error"
	keyUnavailable              = "unavailable"
	keyUnexpected               = "unexpected"
)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		keyEmailInUse:               "This email is already registered. Try logging in or use another email.",
		keyInvalidCredentials:       "Incorrect email or password. Check your credentials and try again.",
		keyCurrentPasswordIncorrect: "The current password is incorrect. Check it and try again.",
		keyPasswordIncorrect:        "Incorrect password. Check it and try again.",
		keyUserNotFound:             "User not found. Check your credentials.",
		keyNewPasswordSame:          "The new password must be different from the current one.",
		keySessionExpired:           "Your session has expired. Please log in again.",
		keyForbidden:                "You do not have permission to perform this action.",
		keyResourceNotFound:         "The requested resource was not found.",
		keyCheckData:                "Please check the information provided and try again.",
		keyConnection:               "Connection error. Check your internet connection and that the server is available.",
		keyInvalidResponse:          "Invalid server response. Please try again.",
		keyInvalidData:              "Invalid data. Check the information and try again.",
		keyNotFound:                 "Resource not found.",
		keyConflict:                 "Conflict: this resource already exists or is in use.",
		keyServerError:              "Internal server error. Try again in a few moments.",
		keyUnavailable:              "Service temporarily unavailable. Try again later.",
		keyUnexpected:               "An unexpected error occurred. Please try again.",
	},
	language.BrazilianPortuguese: {
		keyEmailInUse:               "Este email já está cadastrado. Tente fazer login ou use outro email.",
		keyInvalidCredentials:       "Email ou senha incorretos. Verifique suas credenciais e tente novamente.",
		keyCurrentPasswordIncorrect: "A senha atual está incorreta. Verifique e tente novamente.",
		keyPasswordIncorrect:        "Senha incorreta. Verifique e tente novamente.",
		keyUserNotFound:             "Usuário não encontrado. Verifique suas credenciais.",
		keyNewPasswordSame:          "A nova senha deve ser diferente da senha atual.",
		keySessionExpired:           "Sua sessão expirou. Por favor, faça login novamente.",
		keyForbidden:                "Você não tem permissão para realizar esta ação.",
		keyResourceNotFound:         "O recurso solicitado não foi encontrado.",
		keyCheckData:                "Por favor, verifique os dados informados e tente novamente.",
		keyConnection:               "Erro de conexão. Verifique sua internet e se o servidor está disponível.",
		keyInvalidResponse:          "Resposta inválida do servidor. Tente novamente.",
		keyInvalidData:              "Dados inválidos. Verifique as informações e tente novamente.",
		keyNotFound:                 "Recurso não encontrado.",
		keyConflict:                 "Conflito: este recurso já existe ou está em uso.",
		keyServerError:              "Erro interno do servidor. Tente novamente em alguns instantes.",
		keyUnavailable:              "Serviço temporariamente indisponível. Tente novamente mais tarde.",
		keyUnexpected:               "Ocorreu um erro inesperado. Tente novamente.",
	},
}

// Supported lists the catalog languages; the first one is the fallback.
var Supported = []language.Tag{language.English, language.BrazilianPortuguese}

var defaultCatalog = mustCatalog()

func mustCatalog() catalog.Catalog {
	c, err := newCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func newCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range catalogs {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
