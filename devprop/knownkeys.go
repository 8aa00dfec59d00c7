package devprop

// Well known property keys used by the device and class accessors.
var (
	KeyName = MustParseKey("{b725f130-47ef-101a-a5f1-02608c9eebac} 10") // DEVPKEY_NAME

	KeyDeviceDesc      = MustParseKey("{a45c254e-df1c-4efd-8020-67d146a850e0} 2")  // DEVPKEY_Device_DeviceDesc
	KeyHardwareIDs     = MustParseKey("{a45c254e-df1c-4efd-8020-67d146a850e0} 3")  // DEVPKEY_Device_HardwareIds
	KeyDeviceClass     = MustParseKey("{a45c254e-df1c-4efd-8020-67d146a850e0} 9")  // DEVPKEY_Device_Class
	KeyDeviceClassGUID = MustParseKey("{a45c254e-df1c-4efd-8020-67d146a850e0} 10") // DEVPKEY_Device_ClassGuid
	KeyManufacturer    = MustParseKey("{a45c254e-df1c-4efd-8020-67d146a850e0} 13") // DEVPKEY_Device_Manufacturer
	KeyFriendlyName    = MustParseKey("{a45c254e-df1c-4efd-8020-67d146a850e0} 14") // DEVPKEY_Device_FriendlyName
	KeyLocationPaths   = MustParseKey("{a45c254e-df1c-4efd-8020-67d146a850e0} 37") // DEVPKEY_Device_LocationPaths

	KeyInstanceID    = MustParseKey("{78c34fc8-104a-4aca-9ea4-524d52996e57} 256") // DEVPKEY_Device_InstanceId
	KeyDevNodeStatus = MustParseKey("{4340a6c5-93fa-4706-972c-7b648008a5a7} 2")   // DEVPKEY_Device_DevNodeStatus
	KeyProblemCode   = MustParseKey("{4340a6c5-93fa-4706-972c-7b648008a5a7} 3")   // DEVPKEY_Device_ProblemCode
	KeyParent        = MustParseKey("{4340a6c5-93fa-4706-972c-7b648008a5a7} 8")   // DEVPKEY_Device_Parent
	KeyChildren      = MustParseKey("{4340a6c5-93fa-4706-972c-7b648008a5a7} 9")   // DEVPKEY_Device_Children
	KeyIsPresent     = MustParseKey("{540b947e-8b40-45bc-a8a2-6a0b894cbda2} 5")   // DEVPKEY_Device_IsPresent
	KeyInstallDate   = MustParseKey("{83da6326-97a6-4088-9453-a1923f573b29} 100") // DEVPKEY_Device_InstallDate
	KeyDriverVersion = MustParseKey("{a8b865dd-2e3d-4094-ad97-e593a70c75d6} 3")   // DEVPKEY_Device_DriverVersion

	KeyClassDisplayName = MustParseKey("{259abffc-50a7-47ce-af08-68c9a7d73366} 2") // DEVPKEY_DeviceClass_Name
	KeyClassName        = MustParseKey("{259abffc-50a7-47ce-af08-68c9a7d73366} 3") // DEVPKEY_DeviceClass_ClassName
	KeyClassIcon        = MustParseKey("{259abffc-50a7-47ce-af08-68c9a7d73366} 4") // DEVPKEY_DeviceClass_Icon
	KeyClassInstaller   = MustParseKey("{259abffc-50a7-47ce-af08-68c9a7d73366} 5") // DEVPKEY_DeviceClass_ClassInstaller
)

// knownKeys maps well known keys to their DEVPKEY_ names.
var knownKeys = map[Key]string{
	KeyName:             "DEVPKEY_NAME",
	KeyDeviceDesc:       "DEVPKEY_Device_DeviceDesc",
	KeyHardwareIDs:      "DEVPKEY_Device_HardwareIds",
	KeyDeviceClass:      "DEVPKEY_Device_Class",
	KeyDeviceClassGUID:  "DEVPKEY_Device_ClassGuid",
	KeyManufacturer:     "DEVPKEY_Device_Manufacturer",
	KeyFriendlyName:     "DEVPKEY_Device_FriendlyName",
	KeyLocationPaths:    "DEVPKEY_Device_LocationPaths",
	KeyInstanceID:       "DEVPKEY_Device_InstanceId",
	KeyDevNodeStatus:    "DEVPKEY_Device_DevNodeStatus",
	KeyProblemCode:      "DEVPKEY_Device_ProblemCode",
	KeyParent:           "DEVPKEY_Device_Parent",
	KeyChildren:         "DEVPKEY_Device_Children",
	KeyIsPresent:        "DEVPKEY_Device_IsPresent",
	KeyInstallDate:      "DEVPKEY_Device_InstallDate",
	KeyDriverVersion:    "DEVPKEY_Device_DriverVersion",
	KeyClassDisplayName: "DEVPKEY_DeviceClass_Name",
	KeyClassName:        "DEVPKEY_DeviceClass_ClassName",
	KeyClassIcon:        "DEVPKEY_DeviceClass_Icon",
	KeyClassInstaller:   "DEVPKEY_DeviceClass_ClassInstaller",
}
