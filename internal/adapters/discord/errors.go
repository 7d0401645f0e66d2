package discord

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

// Códigos JSON de la API de Discord que nos interesa distinguir.
const (
	codeUnknownChannel     = 10003
	codeUnknownMessage     = 10008
	codeMissingAccess      = 50001
	codeCannotMessageUser  = 50007
	codeMissingPermissions = 50013
)

// classify envuelve err en un *domain.PlatformError con el tipo que corresponda.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	return &domain.PlatformError{Kind: kindOf(err), Op: op, Err: err}
}

func kindOf(err error) domain.ErrorKind {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return domain.KindUnknown
	}
	if restErr.Message != nil {
		switch restErr.Message.Code {
		case codeMissingPermissions, codeMissingAccess:
			return domain.KindMissingPermissions
		case codeUnknownMessage, codeUnknownChannel:
			return domain.KindNotFound
		case codeCannotMessageUser:
			return domain.KindCannotMessageUser
		}
	}
	// sin código conocido, el status HTTP alcanza para los casos comunes
	if restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case http.StatusForbidden:
			return domain.KindMissingPermissions
		case http.StatusNotFound:
			return domain.KindNotFound
		}
	}
	return domain.KindUnknown
}
