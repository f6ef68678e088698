package pdf

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestPasswordArgs(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name     string
		password Password
		want     []string
	}{
		{
			name:     "none",
			password: Password{},
			want:     nil,
		},
		{
			name:     "owner",
			password: OwnerPassword("hunter2"),
			want:     []string{"-opw", "hunter2"},
		},
		{
			name:     "user",
			password: UserPassword("hunter2"),
			want:     []string{"-upw", "hunter2"},
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			args := test.password.AppendArgs(nil)
			if !reflect.DeepEqual(args, test.want) {
				t.Errorf("wrong args, want %v, got %v", test.want, args)
			}

			if test.password.IsSet() != (len(test.want) > 0) {
				t.Errorf("wrong IsSet, got %v", test.password.IsSet())
			}
		})
	}
}

func TestPasswordRedacted(t *testing.T) {
	t.Parallel()

	for _, password := range []Password{OwnerPassword("hunter2"), UserPassword("hunter2")} {
		for _, verb := range []string{"%v", "%+v", "%s", "%#v"} {
			printed := fmt.Sprintf(verb, password)
			if strings.Contains(printed, "hunter2") {
				t.Errorf("password leaked via %v: %q", verb, printed)
			}
		}
	}
}
