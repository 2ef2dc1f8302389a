package user

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name                            string
		lastName, firstName, middleName string
		want                            string
	}{
		{"all parts", "Иванов", "Иван", "Иванович", "Иванов Иван Иванович"},
		{"no middle name", "Иванов", "Иван", "", "Иванов Иван"},
		{"last name only", "Иванов", "", "", "Иванов"},
		{"empty", "", "", "", ""},
		{"whitespace parts skipped", "Иванов", "  ", "Иванович", "Иванов Иванович"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.lastName, tt.firstName, tt.middleName); got != tt.want {
				t.Errorf("DisplayName() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestUser_CheckPassword(t *testing.T) {
	usr := User{Password: "123"}

	if err := usr.CheckPassword("123"); err != nil {
		t.Errorf("CheckPassword() = %v; want nil", err)
	}
	// the credential is opaque: comparison is verbatim
	if err := usr.CheckPassword(" 123"); err == nil {
		t.Error("CheckPassword() = nil; want error")
	}
	if err := usr.CheckPassword("wrong"); err == nil {
		t.Error("CheckPassword() = nil; want error")
	}
}

func TestUser_HasCompletedTask(t *testing.T) {
	usr := User{CompletedTasks: []int{2, 3}}

	if !usr.HasCompletedTask(2) {
		t.Error("HasCompletedTask(2) = false; want true")
	}
	if usr.HasCompletedTask(1) {
		t.Error("HasCompletedTask(1) = true; want false")
	}
}
