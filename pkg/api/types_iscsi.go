package api

// iSCSI configuration shapes. Configuration changes go through the
// command union: each ISCSICommand* shape is one possible command and
// exactly one of the union's fields should be set per command.

import "github.com/storpool/storpool-go/pkg/schema"

var (
	ISCSIExport = schema.NewShape("iSCSIExport",
		schema.F("portalGroup", ISCSIPGName),
		schema.F("target", ISCSIName),
	)

	ISCSIInitiator = schema.NewShape("iSCSIInitiator",
		schema.F("name", ISCSIName),
		schema.F("username", schema.Str),
		schema.F("secret", schema.Str),
		schema.F("nets", schema.ListOf(schema.Str)),
		schema.F("exports", schema.ListOf(ISCSIExport)),
	)

	ISCSIPGNetwork = schema.NewShape("iSCSIPGNetwork",
		schema.F("address", schema.Str),
		schema.F("prefix", schema.Int),
	)

	ISCSIPortal = schema.NewShape("iSCSIPortal",
		schema.F("controller", ISCSIId),
		schema.F("ip", schema.Str),
		schema.F("port", schema.Str),
	)

	ISCSIPortalGroup = schema.NewShape("iSCSIPortalGroup",
		schema.F("name", ISCSIPGName),
		schema.F("networks", schema.ListOf(ISCSIPGNetwork)),
		schema.F("portals", schema.ListOf(ISCSIPortal)),
	)

	ISCSITarget = schema.NewShape("iSCSITarget",
		schema.F("currentControllerId", schema.Int),
		schema.F("name", ISCSIName),
		schema.F("volume", VolumeName),
	)

	ISCSIConfigData = schema.NewShape("iSCSIConfigData",
		schema.F("baseName", ISCSIName),
		schema.F("initiators", schema.MapOf(ISCSIId, ISCSIInitiator)),
		schema.F("portalGroups", schema.MapOf(schema.Int, ISCSIPortalGroup)),
		schema.F("targets", schema.MapOf(schema.Int, ISCSITarget)),
	)

	ISCSIConfig = schema.NewShape("iSCSIConfig",
		schema.F("iscsi", ISCSIConfigData),
	)

	ISCSICommandSetBaseName = schema.NewShape("iSCSICommandSetBaseName",
		schema.F("name", ISCSIName),
	)

	ISCSICommandCreatePortalGroup = schema.NewShape("iSCSICommandCreatePortalGroup",
		schema.F("name", ISCSIPGName),
	)

	ISCSICommandDeletePortalGroup = schema.NewShape("iSCSICommandDeletePortalGroup",
		schema.F("name", ISCSIPGName),
	)

	ISCSICommandPortalGroupAddNetwork = schema.NewShape("iSCSICommandPortalGroupAddNetwork",
		schema.F("portalGroup", ISCSIPGName),
		schema.F("net", schema.Str),
	)

	ISCSICommandCreatePortal = schema.NewShape("iSCSICommandCreatePortal",
		schema.F("portalGroup", ISCSIPGName),
		schema.F("controller", ISCSIId),
		schema.F("ip", schema.Str),
		schema.F("port", schema.Maybe(schema.Int)),
	)

	ISCSICommandDeletePortal = schema.NewShape("iSCSICommandDeletePortal",
		schema.F("ip", schema.Str),
		schema.F("port", schema.Maybe(schema.Int)),
	)

	ISCSICommandCreateTarget = schema.NewShape("iSCSICommandCreateTarget",
		schema.F("volumeName", VolumeName),
	)

	ISCSICommandDeleteTarget = schema.NewShape("iSCSICommandDeleteTarget",
		schema.F("volumeName", VolumeName),
	)

	ISCSICommandCreateInitiator = schema.NewShape("iSCSICommandCreateInitiator",
		schema.F("name", ISCSIName),
		schema.F("username", schema.Str),
		schema.F("secret", schema.Str),
	)

	ISCSICommandDeleteInitiator = schema.NewShape("iSCSICommandDeleteInitiator",
		schema.F("name", ISCSIName),
	)

	ISCSICommandInitiatorAddNetwork = schema.NewShape("iSCSICommandInitiatorAddNetwork",
		schema.F("initiator", ISCSIName),
		schema.F("net", schema.Str),
	)

	ISCSICommandExport = schema.NewShape("iSCSICommandExport",
		schema.F("initiator", ISCSIName),
		schema.F("portalGroup", ISCSIPGName),
		schema.F("volumeName", VolumeName),
	)

	ISCSICommandExportDelete = schema.NewShape("iSCSICommandExportDelete",
		schema.F("initiator", ISCSIName),
		schema.F("portalGroup", ISCSIPGName),
		schema.F("volumeName", VolumeName),
	)

	ISCSIConfigCommand = schema.NewShape("iSCSIConfigCommand",
		schema.F("setBaseName", schema.Maybe(ISCSICommandSetBaseName)),
		schema.F("createPortalGroup", schema.Maybe(ISCSICommandCreatePortalGroup)),
		schema.F("deletePortalGroup", schema.Maybe(ISCSICommandDeletePortalGroup)),
		schema.F("portalGroupAddNetwork", schema.Maybe(ISCSICommandPortalGroupAddNetwork)),
		schema.F("createPortal", schema.Maybe(ISCSICommandCreatePortal)),
		schema.F("deletePortal", schema.Maybe(ISCSICommandDeletePortal)),
		schema.F("createTarget", schema.Maybe(ISCSICommandCreateTarget)),
		schema.F("deleteTarget", schema.Maybe(ISCSICommandDeleteTarget)),
		schema.F("createInitiator", schema.Maybe(ISCSICommandCreateInitiator)),
		schema.F("deleteInitiator", schema.Maybe(ISCSICommandDeleteInitiator)),
		schema.F("initiatorAddNetwork", schema.Maybe(ISCSICommandInitiatorAddNetwork)),
		schema.F("export", schema.Maybe(ISCSICommandExport)),
		schema.F("exportDelete", schema.Maybe(ISCSICommandExportDelete)),
	)

	ISCSIConfigChange = schema.NewShape("iSCSIConfigChange",
		schema.F("commands", schema.ListOf(ISCSIConfigCommand)),
	)

	// ISCSIControllersQuery narrows a controller status query to specific
	// target services.
	ISCSIControllersQuery = schema.NewShape("iSCSIControllersQuery",
		schema.F("controllers", schema.Maybe(schema.ListOf(ISCSIId))),
	)

	ISCSISessionInfo = schema.NewShape("iSCSISessionInfo",
		schema.F("controllerId", ISCSIId),
		schema.F("initiator", ISCSIName),
		schema.F("target", ISCSIName),
		schema.F("portal", schema.Maybe(schema.Str)),
		schema.F("initiatorIP", schema.Maybe(schema.Str)),
		schema.F("timeCreated", schema.Maybe(schema.Long)),
		schema.F("connectionsCount", schema.Maybe(schema.Int)),
	)

	ISCSISessionsInfo = schema.NewShape("iSCSISessionsInfo",
		schema.F("sessions", schema.ListOf(ISCSISessionInfo)),
	)

	ISCSIControllerInterfaceInfo = schema.NewShape("iSCSIControllerInterfaceInfo",
		schema.F("controllerId", ISCSIId),
		schema.F("name", schema.Str),
		schema.F("mac", schema.Maybe(MacAddr)),
		schema.F("up", schema.Bool),
		schema.F("speed", schema.Maybe(schema.Int)),
	)

	ISCSIControllersInterfacesInfo = schema.NewShape("iSCSIControllersIntefacesInfo",
		schema.F("interfaces", schema.ListOf(ISCSIControllerInterfaceInfo)),
	)
)
