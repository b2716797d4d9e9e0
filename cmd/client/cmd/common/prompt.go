package common

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"goldkeeper/internal/domain/user"
)

var stdin = bufio.NewReader(os.Stdin)

// Ask читает строку из stdin
func Ask(w io.Writer, label string) (string, error) {
	fmt.Fprintf(w, "%s: ", label)
	line, err := stdin.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("ошибка чтения ввода: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// AskDefault - как Ask, пустой ввод означает значение по умолчанию
func AskDefault(w io.Writer, label, def string) (string, error) {
	if def != "" {
		label = fmt.Sprintf("%s [%s]", label, def)
	}
	v, err := Ask(w, label)
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

// AskPassword читает пароль без эха. Если stdin не терминал, пароль читается строкой.
func AskPassword(w io.Writer, label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintf(w, "%s: ", label)
		line, err := stdin.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return "", fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Fprintln(w)
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprintf(w, "%s: ", label)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return string(b), nil
}

// AskNewPassword запрашивает новый пароль дважды
func AskNewPassword(w io.Writer) (string, error) {
	pw, err := AskPassword(w, fmt.Sprintf("Новый пароль (минимум %d символов)", user.MinPasswordLen))
	if err != nil {
		return "", err
	}
	again, err := AskPassword(w, "Повторите пароль")
	if err != nil {
		return "", err
	}
	if pw != again {
		return "", errors.New("пароли не совпадают")
	}
	return pw, nil
}

// Confirm задает вопрос да/нет, по умолчанию нет
func Confirm(w io.Writer, question string) (bool, error) {
	v, err := Ask(w, question+" [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(v) {
	case "y", "yes", "д", "да":
		return true, nil
	default:
		return false, nil
	}
}
