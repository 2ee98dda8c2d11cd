package api

import "github.com/storpool/storpool-go/pkg/schema"

// Catalog-wide limits and identifier patterns of the management API.
const (
	VolumeNameSize         = 200
	PlacementGroupNameSize = 128
	RemoteLocationNameSize = 64

	VolumeNameRegex         = `^#?[A-Za-z0-9_\-.:]+$`
	SnapshotNameRegex       = `^\*?[A-Za-z0-9_\-.:@]+$`
	PlacementGroupNameRegex = `^[A-Za-z0-9_\-]+$`
	VolumeTemplateNameRegex = `^[A-Za-z0-9_\-]+$`
	DiskDescRegex           = `^[A-Za-z0-9_\- ]{0,30}$`
	VolumeTagNameRegex      = `^[A-Za-z0-9_\-.:]+$`
	VolumeTagValueRegex     = `^[A-Za-z0-9_\-.:]*$`

	// GlobalIDRegex matches the location.cluster.id form of globally
	// unique volume and snapshot identifiers.
	GlobalIDRegex = `^[a-z0-9]+\.[a-z0-9]+\.[a-z0-9]+$`
	// GlobalIDNameRegex is the alternate identifier syntax accepted
	// wherever a volume or snapshot name is expected: a "~" prefix
	// followed by the global identifier.
	GlobalIDNameRegex = `^~[a-z0-9]+\.[a-z0-9]+\.[a-z0-9]+$`
)

const (
	MaxChainLength = 6

	MaxClientDisks  = 1024
	MaxClientDisk   = MaxClientDisks - 1
	MaxClusterDisks = 4096
	MaxDiskID       = MaxClusterDisks - 1

	MaxNetID           = 3
	MaxNodeID          = 63
	MaxPeerID          = 0xffff
	PeerTypeClient     = 0x8000
	MaxPeersPerSubtype = 0x1000
	MaxServerID        = PeerTypeClient - 1
	MaxClientID        = MaxPeersPerSubtype
	MaxBridgeID        = MaxPeersPerSubtype
	MaxMgmtID          = MaxPeersPerSubtype

	MaxISCSIID = 0x0fff
)

// GenerationNone marks a disk that is currently active.
const GenerationNone = int64(-1)

var (
	MacAddr = schema.Regex("MAC Address", `^([0-9a-fA-F]{2}:){5}[0-9a-fA-F]{2}$`)
	GUID    = schema.Regex("GUID", `^0x[0-9a-fA-F]{2,16}$`)

	BeaconNodeStatus    = schema.OneOf("BeaconNodeStatus", "NODE_DOWN", "NODE_UP")
	BeaconClusterStatus = schema.OneOf("BeaconClusterStatus", "CNODE_DOWN", "CNODE_DAMPING", "CNODE_UP")
	PeerStatus          = schema.OneOf("PeerStatus", "up", "down")
	ClientStatus        = schema.OneOf("ClientStatus", "running", "down")
	ServerStatus        = schema.OneOf("ServerStatus", "running", "waiting", "booting", "down")
	BridgeStatus        = schema.OneOf("BridgeStatus", "running", "joining", "down")
	ClusterState        = schema.OneOf("ClusterStatus", "running", "waiting", "down")
	RdmaState           = schema.OneOf("RdmaState", "Idle", "GidReceived", "Connecting", "Connected", "pendingError", "Error")

	NetId    = schema.IntRange("NetID", 0, MaxNetID)
	NodeId   = schema.IntRange("NodeID", 0, MaxNodeID)
	PeerId   = schema.IntRange("PeerID", 0, MaxPeerID)
	ClientId = schema.IntRange("ClientID", 1, MaxClientID)
	ServerId = schema.IntRange("ServerID", 1, MaxServerID)
	MgmtId   = schema.IntRange("MgmtID", 1, MaxMgmtID)
	BridgeId = schema.IntRange("BridgeId", 1, MaxBridgeID)

	DiskId          = schema.IntRange("DiskID", 0, MaxDiskID)
	DiskDescription = schema.Regex("DiskDescription", DiskDescRegex)

	VolumeName        = schema.NameType("VolumeName", VolumeNameRegex, VolumeNameSize, "list", "status")
	SnapshotName      = schema.NameType("SnapshotName", SnapshotNameRegex, VolumeNameSize, "list", "status")
	VolumeReplication = schema.IntRange("Replication", 1, 3)
	VolumeSize        = schema.SizeType("Size")
	VolumeResize      = schema.SizeType("SizeAdd")

	VolumeTagName  = schema.NameType("VolumeTagName", VolumeTagNameRegex, VolumeNameSize)
	VolumeTagValue = schema.NameType("VolumeTagValue", VolumeTagValueRegex, VolumeNameSize)

	PlacementGroupName = schema.NameType("PlacementGroupName", PlacementGroupNameRegex, PlacementGroupNameSize, "list")
	FaultSetName       = PlacementGroupName
	VolumeTemplateName = schema.NameType("VolumeTemplateName", VolumeTemplateNameRegex, VolumeNameSize, "list")

	Bandwidth        = schema.UnlimitedInt("Bandwidth", 0, "-")
	IOPS             = schema.UnlimitedInt("IOPS", 0, "-")
	AttachmentRights = schema.OneOf("AttachmentRights", "rw", "ro")
	AttachmentPos    = schema.IntRange("AttachmentPos", 0, MaxClientDisk)

	ObjectState = schema.NamedEnum("ObjectState", []string{
		"OBJECT_UNDEF", "OBJECT_OK", "OBJECT_OUTDATED", "OBJECT_IN_RECOVERY",
		"OBJECT_WAITING_FOR_VERSION", "OBJECT_WAITING_FOR_DISK",
		"OBJECT_DATA_NOT_PRESENT", "OBJECT_DATA_LOST",
		"OBJECT_WAINING_FOR_CHAIN", "OBJECT_WAIT_IDLE",
	}, 0)

	RemoteLocationName = schema.NameType("RemoteLocationName", VolumeNameRegex, RemoteLocationNameSize, "list")
	ClusterName        = RemoteLocationName
	GlobalVolumeId     = schema.Regex("Global Volume Id", GlobalIDRegex)
	LocationId         = schema.Regex("Global Location Id", `^[a-z0-9]+$`)
	RemoteClusterId    = schema.Regex("Global Cluster Id", `^[a-z0-9]+\.[a-z0-9]+$`)

	// Volume and snapshot names may equally be given as "~"-prefixed
	// global identifiers; no third form is accepted.
	GlobalIdName           = schema.Regex("GlobalIdName", GlobalIDNameRegex)
	VolumeNameOrGlobalId   = schema.Either(VolumeName, GlobalIdName)
	SnapshotNameOrGlobalId = schema.Either(SnapshotName, GlobalIdName)

	ISCSIId     = schema.IntRange("iSCSIId", 0, MaxISCSIID)
	ISCSIName   = schema.Regex("iSCSIName", `^[a-z0-9\-.:]+$`)
	ISCSIPGName = schema.Regex("iSCSIPGName", `^[A-Za-z0-9_\-.:]+$`)

	DetachClientsList = schema.EitherOr(schema.ListOf(ClientId), "all")
)
