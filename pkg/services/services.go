package services

import (
	"fmt"

	"github.com/aqualab/meterconsole/pkg/apiclient"
)

// Default page sizes the backend contract uses when a caller does not ask
// for one.
const (
	DefaultListSize   = 20
	DefaultMeterSize  = 10
	DefaultFilterSize = 20
	DefaultLogSize    = 10
)

// Registry holds one service per backend resource.
type Registry struct {
	Auth           *AuthService
	Users          *UserService
	Roles          *RoleService
	Departments    *DepartmentService
	Permissions    *PermissionService
	SerialPorts    *SerialPortService
	SerialData     *SerialDataService
	PdfRecords     *PdfRecordService
	Notifications  *NotificationService
	PasswordPolicy *PasswordPolicyService
	ActivityLogs   *ActivityLogService
}

// NewRegistry wires every service to client. Login goes through public so a
// stale bearer token can never interfere with starting a new session.
func NewRegistry(client, public *apiclient.Client) *Registry {
	return &Registry{
		Auth:           &AuthService{client: public},
		Users:          &UserService{client: client},
		Roles:          &RoleService{client: client},
		Departments:    &DepartmentService{client: client},
		Permissions:    &PermissionService{client: client},
		SerialPorts:    &SerialPortService{client: client},
		SerialData:     &SerialDataService{client: client},
		PdfRecords:     &PdfRecordService{client: client},
		Notifications:  &NotificationService{client: client},
		PasswordPolicy: &PasswordPolicyService{client: client},
		ActivityLogs:   &ActivityLogService{client: client},
	}
}

func idPath(base string, id int64) string {
	return fmt.Sprintf("%s/%d", base, id)
}
