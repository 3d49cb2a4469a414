package dashboard

import "github.com/aqualab/meterconsole/pkg/query"

// Cache key families. A binding's key is its family plus its parameters.
const (
	KeyCurrentUser            = "currentUser"
	KeyUsers                  = "users"
	KeyUser                   = "user"
	KeyRoles                  = "roles"
	KeyRole                   = "role"
	KeyDepartments            = "departments"
	KeyDepartment             = "department"
	KeyPermissions            = "permissions"
	KeyPermissionsByUser      = "permissionsByUser"
	KeyPermissionsByGroup     = "permissionsByGroup"
	KeySerialPorts            = "serialPorts"
	KeyLatestSerialData       = "latestSerialData"
	KeyTemperatureCalibration = "temperatureCalibration"
	KeyPh                     = "ph"
	KeyPhCalibration          = "phCalibration"
	KeyOrp                    = "orp"
	KeyOrpCalibration         = "orpCalibration"
	KeyMv                     = "mv"
	KeyRecordsFilter          = "recordsFilter"
	KeyDataByTimeRange        = "dataByTimeRange"
	KeyAuditLog               = "auditLog"
	KeyPdfRecords             = "pdfRecords"
	KeyPdfRecord              = "pdfRecord"
	KeyPdfDownload            = "pdfDownload"
	KeyCsvDownload            = "csvDownload"
	KeyNotifications          = "notifications"
	KeyPasswordPolicy         = "passwordPolicy"
	KeyActivityLogs           = "activityLogs"
	KeyActivityLogsSearch     = "activityLogsSearch"
	KeyUserActivityLogs       = "userActivityLogs"
)

func family(name string) query.Key {
	return query.NewKey(name)
}
