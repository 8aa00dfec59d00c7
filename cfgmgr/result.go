package cfgmgr

import "fmt"

// Result is a CONFIGRET status code returned by every configuration manager
// function.
type Result uint32

// CONFIGRET values.
const (
	CR_SUCCESS                  Result = 0x00000000
	CR_DEFAULT                  Result = 0x00000001
	CR_OUT_OF_MEMORY            Result = 0x00000002
	CR_INVALID_POINTER          Result = 0x00000003
	CR_INVALID_FLAG             Result = 0x00000004
	CR_INVALID_DEVNODE          Result = 0x00000005
	CR_INVALID_RES_DES          Result = 0x00000006
	CR_INVALID_LOG_CONF         Result = 0x00000007
	CR_INVALID_ARBITRATOR       Result = 0x00000008
	CR_INVALID_NODELIST         Result = 0x00000009
	CR_DEVNODE_HAS_REQS         Result = 0x0000000A
	CR_INVALID_RESOURCEID       Result = 0x0000000B
	CR_NO_SUCH_DEVNODE          Result = 0x0000000D
	CR_NO_MORE_LOG_CONF         Result = 0x0000000E
	CR_NO_MORE_RES_DES          Result = 0x0000000F
	CR_ALREADY_SUCH_DEVNODE     Result = 0x00000010
	CR_INVALID_RANGE_LIST       Result = 0x00000011
	CR_INVALID_RANGE            Result = 0x00000012
	CR_FAILURE                  Result = 0x00000013
	CR_NO_SUCH_LOGICAL_DEV      Result = 0x00000014
	CR_CREATE_BLOCKED           Result = 0x00000015
	CR_REMOVE_VETOED            Result = 0x00000017
	CR_APM_VETOED               Result = 0x00000018
	CR_INVALID_LOAD_TYPE        Result = 0x00000019
	CR_BUFFER_SMALL             Result = 0x0000001A
	CR_NO_ARBITRATOR            Result = 0x0000001B
	CR_NO_REGISTRY_HANDLE       Result = 0x0000001C
	CR_REGISTRY_ERROR           Result = 0x0000001D
	CR_INVALID_DEVICE_ID        Result = 0x0000001E
	CR_INVALID_DATA             Result = 0x0000001F
	CR_INVALID_API              Result = 0x00000020
	CR_DEVLOADER_NOT_READY      Result = 0x00000021
	CR_NEED_RESTART             Result = 0x00000022
	CR_NO_MORE_HW_PROFILES      Result = 0x00000023
	CR_DEVICE_NOT_THERE         Result = 0x00000024
	CR_NO_SUCH_VALUE            Result = 0x00000025
	CR_WRONG_TYPE               Result = 0x00000026
	CR_INVALID_PRIORITY         Result = 0x00000027
	CR_NOT_DISABLEABLE          Result = 0x00000028
	CR_FREE_RESOURCES           Result = 0x00000029
	CR_QUERY_VETOED             Result = 0x0000002A
	CR_CANT_SHARE_IRQ           Result = 0x0000002B
	CR_NO_DEPENDENT             Result = 0x0000002C
	CR_SAME_RESOURCES           Result = 0x0000002D
	CR_NO_SUCH_REGISTRY_KEY     Result = 0x0000002E
	CR_INVALID_MACHINENAME      Result = 0x0000002F
	CR_REMOTE_COMM_FAILURE      Result = 0x00000030
	CR_MACHINE_UNAVAILABLE      Result = 0x00000031
	CR_NO_CM_SERVICES           Result = 0x00000032
	CR_ACCESS_DENIED            Result = 0x00000033
	CR_CALL_NOT_IMPLEMENTED     Result = 0x00000034
	CR_INVALID_PROPERTY         Result = 0x00000035
	CR_DEVICE_INTERFACE_ACTIVE  Result = 0x00000036
	CR_NO_SUCH_DEVICE_INTERFACE Result = 0x00000037
	CR_INVALID_REFERENCE_STRING Result = 0x00000038
	CR_INVALID_CONFLICT_LIST    Result = 0x00000039
	CR_INVALID_INDEX            Result = 0x0000003A
	CR_INVALID_STRUCTURE_SIZE   Result = 0x0000003B
)

// Disposition is what a caller should do with a Result.
type Disposition int

const (
	Success        Disposition = iota // the call produced its value
	BufferTooSmall                    // retry with the reported size
	NoMoreItems                       // end of an indexed enumeration
	OtherFailure                      // the call failed
)

func (d Disposition) String() string {
	switch d {
	case Success:
		return "Success"
	case BufferTooSmall:
		return "BufferTooSmall"
	case NoMoreItems:
		return "NoMoreItems"
	}
	return "OtherFailure"
}

// Disposition classifies r. Every code maps to exactly one disposition;
// codes other than the three control codes are failures.
func (r Result) Disposition() Disposition {
	switch r {
	case CR_SUCCESS:
		return Success
	case CR_BUFFER_SMALL:
		return BufferTooSmall
	case CR_NO_SUCH_VALUE:
		return NoMoreItems
	}
	return OtherFailure
}

var resultNames = map[Result]string{
	CR_SUCCESS:                  "CR_SUCCESS",
	CR_DEFAULT:                  "CR_DEFAULT",
	CR_OUT_OF_MEMORY:            "CR_OUT_OF_MEMORY",
	CR_INVALID_POINTER:          "CR_INVALID_POINTER",
	CR_INVALID_FLAG:             "CR_INVALID_FLAG",
	CR_INVALID_DEVNODE:          "CR_INVALID_DEVNODE",
	CR_INVALID_RES_DES:          "CR_INVALID_RES_DES",
	CR_INVALID_LOG_CONF:         "CR_INVALID_LOG_CONF",
	CR_INVALID_ARBITRATOR:       "CR_INVALID_ARBITRATOR",
	CR_INVALID_NODELIST:         "CR_INVALID_NODELIST",
	CR_DEVNODE_HAS_REQS:         "CR_DEVNODE_HAS_REQS",
	CR_INVALID_RESOURCEID:       "CR_INVALID_RESOURCEID",
	CR_NO_SUCH_DEVNODE:          "CR_NO_SUCH_DEVNODE",
	CR_NO_MORE_LOG_CONF:         "CR_NO_MORE_LOG_CONF",
	CR_NO_MORE_RES_DES:          "CR_NO_MORE_RES_DES",
	CR_ALREADY_SUCH_DEVNODE:     "CR_ALREADY_SUCH_DEVNODE",
	CR_INVALID_RANGE_LIST:       "CR_INVALID_RANGE_LIST",
	CR_INVALID_RANGE:            "CR_INVALID_RANGE",
	CR_FAILURE:                  "CR_FAILURE",
	CR_NO_SUCH_LOGICAL_DEV:      "CR_NO_SUCH_LOGICAL_DEV",
	CR_CREATE_BLOCKED:           "CR_CREATE_BLOCKED",
	CR_REMOVE_VETOED:            "CR_REMOVE_VETOED",
	CR_APM_VETOED:               "CR_APM_VETOED",
	CR_INVALID_LOAD_TYPE:        "CR_INVALID_LOAD_TYPE",
	CR_BUFFER_SMALL:             "CR_BUFFER_SMALL",
	CR_NO_ARBITRATOR:            "CR_NO_ARBITRATOR",
	CR_NO_REGISTRY_HANDLE:       "CR_NO_REGISTRY_HANDLE",
	CR_REGISTRY_ERROR:           "CR_REGISTRY_ERROR",
	CR_INVALID_DEVICE_ID:        "CR_INVALID_DEVICE_ID",
	CR_INVALID_DATA:             "CR_INVALID_DATA",
	CR_INVALID_API:              "CR_INVALID_API",
	CR_DEVLOADER_NOT_READY:      "CR_DEVLOADER_NOT_READY",
	CR_NEED_RESTART:             "CR_NEED_RESTART",
	CR_NO_MORE_HW_PROFILES:      "CR_NO_MORE_HW_PROFILES",
	CR_DEVICE_NOT_THERE:         "CR_DEVICE_NOT_THERE",
	CR_NO_SUCH_VALUE:            "CR_NO_SUCH_VALUE",
	CR_WRONG_TYPE:               "CR_WRONG_TYPE",
	CR_INVALID_PRIORITY:         "CR_INVALID_PRIORITY",
	CR_NOT_DISABLEABLE:          "CR_NOT_DISABLEABLE",
	CR_FREE_RESOURCES:           "CR_FREE_RESOURCES",
	CR_QUERY_VETOED:             "CR_QUERY_VETOED",
	CR_CANT_SHARE_IRQ:           "CR_CANT_SHARE_IRQ",
	CR_NO_DEPENDENT:             "CR_NO_DEPENDENT",
	CR_SAME_RESOURCES:           "CR_SAME_RESOURCES",
	CR_NO_SUCH_REGISTRY_KEY:     "CR_NO_SUCH_REGISTRY_KEY",
	CR_INVALID_MACHINENAME:      "CR_INVALID_MACHINENAME",
	CR_REMOTE_COMM_FAILURE:      "CR_REMOTE_COMM_FAILURE",
	CR_MACHINE_UNAVAILABLE:      "CR_MACHINE_UNAVAILABLE",
	CR_NO_CM_SERVICES:           "CR_NO_CM_SERVICES",
	CR_ACCESS_DENIED:            "CR_ACCESS_DENIED",
	CR_CALL_NOT_IMPLEMENTED:     "CR_CALL_NOT_IMPLEMENTED",
	CR_INVALID_PROPERTY:         "CR_INVALID_PROPERTY",
	CR_DEVICE_INTERFACE_ACTIVE:  "CR_DEVICE_INTERFACE_ACTIVE",
	CR_NO_SUCH_DEVICE_INTERFACE: "CR_NO_SUCH_DEVICE_INTERFACE",
	CR_INVALID_REFERENCE_STRING: "CR_INVALID_REFERENCE_STRING",
	CR_INVALID_CONFLICT_LIST:    "CR_INVALID_CONFLICT_LIST",
	CR_INVALID_INDEX:            "CR_INVALID_INDEX",
	CR_INVALID_STRUCTURE_SIZE:   "CR_INVALID_STRUCTURE_SIZE",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("CONFIGRET(0x%X)", uint32(r))
}
