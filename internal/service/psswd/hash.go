package psswd

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost стоимость bcrypt. Зашита константой, т.к. от нее зависят уже сохраненные дайджесты.
const hashCost = 10

type PasswordHash string

func (p PasswordHash) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (p PasswordHash) ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
