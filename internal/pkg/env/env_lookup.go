package env

import (
	"os"
	"strconv"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

func TrySetIntFromEnv(envName string, val *int) {
	if envVal, found := os.LookupEnv(envName); found {
		if parsed, err := strconv.Atoi(envVal); err == nil {
			*val = parsed
		}
	}
}
