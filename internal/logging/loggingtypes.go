package logging

// GetLogType creates a key/value slice which can be passed to the Logger methods.
// It takes up to two arguments: subtype and contextId1.
// The resulting pairs end up as structured fields on every log line, so
// log aggregation can filter by subsystem.
func GetLogType(logType ...string) []any {
	var temp []any
	for i := 0; i < len(logType); i++ {
		if len(logType[i]) <= 0 {
			break
		}
		if i == 0 {
			temp = append(temp, "subType")
		} else if i == 1 {
			temp = append(temp, "contextId1")
		} else {
			break
		}
		temp = append(temp, logType[i])
	}
	return temp
}

func GetLogTypeInitialization() []any {
	return GetLogType("initialization")
}
