package user

// User is the resolved identity of whoever runs the app.
type User struct {
	ID               string `json:"id"`
	IsAdmin          bool   `json:"isAdmin"`
	TelegramID       int64  `json:"telegramId"`
	TelegramUsername string `json:"telegramUsername"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Avatar           string `json:"avatar"`
}

// CreateUser payload of registration.
// swagger:model CreateUser
type CreateUser struct {
	TelegramID       int64  `json:"telegramId"       example:"123456789"`
	TelegramUsername string `json:"telegramUsername" example:"rider"`
	FirstName        string `json:"firstName"        example:"Ivan"`
	LastName         string `json:"lastName"         example:"Petrov"`
	Avatar           string `json:"avatar"`
}

// DisplayName is the name shown in greetings.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.TelegramUsername != "":
		return "@" + u.TelegramUsername
	default:
		return u.ID
	}
}
