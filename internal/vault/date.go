package vault

import "time"

func validDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
