package models

// SerialPortConfig binds a meter to the serial port it reports on.
type SerialPortConfig struct {
	ID             int64  `json:"id,omitempty" yaml:"id,omitempty"`
	MeterNumber    string `json:"meterNumber" yaml:"meterNumber"`
	SerialPortName string `json:"serialPortName" yaml:"serialPortName"`
	BaudRate       int    `json:"baudRate" yaml:"baudRate"`
	Active         bool   `json:"active" yaml:"active"`
}

// SerialDataRecord is one raw line received from a meter.
type SerialDataRecord struct {
	ID         int64     `json:"id,omitempty" yaml:"id,omitempty"`
	Raw        string    `json:"raw" yaml:"raw"`
	ReceivedAt Timestamp `json:"receivedAt" yaml:"receivedAt"`
}

// Instrument identifies the meter that produced an export.
type Instrument struct {
	InstrumentName    string     `json:"instrumentName,omitempty" yaml:"instrumentName,omitempty"`
	MeterModel        string     `json:"meterModel,omitempty" yaml:"meterModel,omitempty"`
	MeterSerialNumber string     `json:"meterSerialNumber,omitempty" yaml:"meterSerialNumber,omitempty"`
	SoftwareRevision  string     `json:"softwareRevision,omitempty" yaml:"softwareRevision,omitempty"`
	ExportDate        string     `json:"exportDate,omitempty" yaml:"exportDate,omitempty"`
	ExportTime        *LocalTime `json:"exportTime,omitempty" yaml:"exportTime,omitempty"`
	ExportAmPm        string     `json:"exportAmPm,omitempty" yaml:"exportAmPm,omitempty"`
}

// DataLog is the header every logged meter reading carries.
type DataLog struct {
	ID                int64     `json:"id,omitempty" yaml:"id,omitempty"`
	MeterNumber       string    `json:"meterNumber" yaml:"meterNumber"`
	DataLogNumber     int64     `json:"dataLogNumber" yaml:"dataLogNumber"`
	DataLogDate       string    `json:"dataLogDate" yaml:"dataLogDate"`
	DataLogTime       LocalTime `json:"dataLogTime" yaml:"dataLogTime"`
	DataLogAmPm       string    `json:"dataLogAmPm" yaml:"dataLogAmPm"`
	UserName          string    `json:"userName" yaml:"userName"`
	ReadType          string    `json:"readType" yaml:"readType"`
	Mode              string    `json:"mode" yaml:"mode"`
	Temperature       *float64  `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	TemperatureUnit   string    `json:"temperatureUnit,omitempty" yaml:"temperatureUnit,omitempty"`
	TemperatureMethod string    `json:"temperatureMethod,omitempty" yaml:"temperatureMethod,omitempty"`
	ReadTime          string    `json:"readTime,omitempty" yaml:"readTime,omitempty"`
}

// CalibrationLog references the calibration in force for a reading.
type CalibrationLog struct {
	CalibLogNumber string     `json:"calibLogNumber,omitempty" yaml:"calibLogNumber,omitempty"`
	CalibLogDate   string     `json:"calibLogDate,omitempty" yaml:"calibLogDate,omitempty"`
	CalibLogTime   *LocalTime `json:"calibLogTime,omitempty" yaml:"calibLogTime,omitempty"`
	CalibLogAmPm   string     `json:"calibLogAmPm,omitempty" yaml:"calibLogAmPm,omitempty"`
}

// Ph is a logged pH reading.
type Ph struct {
	DataLog        `yaml:",inline"`
	CalibrationLog `yaml:",inline"`
	Instrument     `yaml:",inline"`

	AverageSlope     *float64 `json:"averageSlope,omitempty" yaml:"averageSlope,omitempty"`
	AverageSlopeUnit string   `json:"averageSlopeUnit,omitempty" yaml:"averageSlopeUnit,omitempty"`
	Mv               *float64 `json:"mv,omitempty" yaml:"mv,omitempty"`
	MvUnit           string   `json:"mvunit,omitempty" yaml:"mvunit,omitempty"`
	Ph               *float64 `json:"ph,omitempty" yaml:"ph,omitempty"`
	PhUnit           string   `json:"phunit,omitempty" yaml:"phunit,omitempty"`
}

// Orp is a logged oxidation-reduction potential reading.
type Orp struct {
	DataLog        `yaml:",inline"`
	CalibrationLog `yaml:",inline"`
	Instrument     `yaml:",inline"`

	Orp             *float64 `json:"orp,omitempty" yaml:"orp,omitempty"`
	OrpUnit         string   `json:"orpUnit,omitempty" yaml:"orpUnit,omitempty"`
	OrpCalType      string   `json:"orpCalType,omitempty" yaml:"orpCalType,omitempty"`
	OffsetValue     *float64 `json:"offsetValue,omitempty" yaml:"offsetValue,omitempty"`
	OffsetValueUnit string   `json:"offsetValueUnit,omitempty" yaml:"offsetValueUnit,omitempty"`
	Mv              *float64 `json:"mv,omitempty" yaml:"mv,omitempty"`
	MvUnit          string   `json:"mvunit,omitempty" yaml:"mvunit,omitempty"`
}

// Mv is a logged millivolt reading.
type Mv struct {
	DataLog    `yaml:",inline"`
	Instrument `yaml:",inline"`

	Mv     *float64 `json:"mv,omitempty" yaml:"mv,omitempty"`
	MvUnit string   `json:"mvunit,omitempty" yaml:"mvunit,omitempty"`
}

// TemperatureCalibration is a temperature probe calibration entry.
type TemperatureCalibration struct {
	ID               int64     `json:"id,omitempty" yaml:"id,omitempty"`
	MeterNumber      string    `json:"meterNumber" yaml:"meterNumber"`
	LogDate          string    `json:"logDate" yaml:"logDate"`
	LogTime          LocalTime `json:"logTime" yaml:"logTime"`
	LogAmPm          string    `json:"logAmPm" yaml:"logAmPm"`
	Atc1Temp         *float64  `json:"atc1Temp,omitempty" yaml:"atc1Temp,omitempty"`
	Atc1TempUnit     string    `json:"atc1TempUnit,omitempty" yaml:"atc1TempUnit,omitempty"`
	EnteredTemp1     *float64  `json:"enteredTemp1,omitempty" yaml:"enteredTemp1,omitempty"`
	EnteredTempUnit1 string    `json:"enteredTempUnit1,omitempty" yaml:"enteredTempUnit1,omitempty"`
	EnteredTemp2     *float64  `json:"enteredTemp2,omitempty" yaml:"enteredTemp2,omitempty"`
	EnteredTempUnit2 string    `json:"enteredTempUnit2,omitempty" yaml:"enteredTempUnit2,omitempty"`
	OffsetTemp       *float64  `json:"offsetTemp,omitempty" yaml:"offsetTemp,omitempty"`
	OffsetTempUnit   string    `json:"offsetTempUnit,omitempty" yaml:"offsetTempUnit,omitempty"`
}

// PhCalibration is a pH electrode calibration entry.
type PhCalibration struct {
	ID                    int64     `json:"id,omitempty" yaml:"id,omitempty"`
	MeterNumber           string    `json:"meterNumber" yaml:"meterNumber"`
	CalLogDate            string    `json:"calLogDate" yaml:"calLogDate"`
	CalLogTime            LocalTime `json:"calLogTime" yaml:"calLogTime"`
	CalLogAmPm            string    `json:"calLogAmPm" yaml:"calLogAmPm"`
	Ph                    float64   `json:"ph" yaml:"ph"`
	Temperature           *float64  `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	TemperatureUnit       string    `json:"temperatureUnit,omitempty" yaml:"temperatureUnit,omitempty"`
	EnteredSlopePercent   *float64  `json:"enteredSlopePercentage,omitempty" yaml:"enteredSlopePercentage,omitempty"`
	Points                int       `json:"points" yaml:"points"`
	PointsSlopePercentage *float64  `json:"pointsSlopePercentage,omitempty" yaml:"pointsSlopePercentage,omitempty"`
}

// OrpCalibration is an ORP electrode calibration entry.
type OrpCalibration struct {
	ID              int64     `json:"id,omitempty" yaml:"id,omitempty"`
	MeterNumber     string    `json:"meterNumber" yaml:"meterNumber"`
	CalLogDate      string    `json:"calLogDate" yaml:"calLogDate"`
	CalLogTime      LocalTime `json:"calLogTime" yaml:"calLogTime"`
	CalLogAmPm      string    `json:"calLogAmPm" yaml:"calLogAmPm"`
	OrpCalType      string    `json:"orpCalType" yaml:"orpCalType"`
	Rmv             *float64  `json:"rmv,omitempty" yaml:"rmv,omitempty"`
	Temperature     *float64  `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	TemperatureUnit string    `json:"temperatureUnit,omitempty" yaml:"temperatureUnit,omitempty"`
	Offset          *float64  `json:"offset,omitempty" yaml:"offset,omitempty"`
	OffsetUnit      string    `json:"offsetUnit,omitempty" yaml:"offsetUnit,omitempty"`
}

// AuditRecord is one entry of the meter-data audit log. The backend does not
// pin its shape, so it is kept as decoded JSON.
type AuditRecord map[string]any
