package api

// Cluster-level shapes: networks, peers, services, client configuration
// state, recovery tasks, active requests and node maintenance.

import "github.com/storpool/storpool-go/pkg/schema"

var (
	// NetDesc describes one Ethernet network used for storage traffic.
	NetDesc = schema.NewShape("NetDesc",
		schema.F("mac", MacAddr),
	)

	// RdmaDesc describes one RDMA network and its connection state.
	RdmaDesc = schema.NewShape("RdmaDesc",
		schema.F("guid", GUID),
		schema.F("state", RdmaState),
	)

	// PeerDesc is the beacon's view of one cluster node.
	PeerDesc = schema.NewShape("PeerDesc",
		schema.F("beaconStatus", BeaconNodeStatus),
		schema.F("clusterStatus", BeaconClusterStatus),
		schema.F("joined", schema.Bool),
		schema.F("networks", schema.Maybe(schema.MapOf(NetId, NetDesc))),
		schema.F("rdma", schema.MapOf(NetId, RdmaDesc)),
		schema.F("nonVoting", schema.Bool),
	)

	// Service holds the attributes common to all StorPool services.
	Service = schema.NewShape("Service",
		schema.F("nodeId", NodeId),
		schema.F("version", schema.Str),
		schema.F("startTime", schema.EitherOr(schema.Int, nil)),
	)

	Server = Service.Extend("Server",
		schema.F("id", ServerId),
		schema.F("status", ServerStatus),
		schema.F("missingDisks", schema.ListOf(DiskId)),
		schema.F("pendingDisks", schema.ListOf(DiskId)),
	)

	Client = Service.Extend("Client",
		schema.F("id", ClientId),
		schema.F("status", ClientStatus),
	)

	Mgmt = Service.Extend("Mgmt",
		schema.F("id", MgmtId),
		schema.F("status", ClientStatus),
		schema.F("prio", schema.Internal(schema.Int)),
		schema.F("active", schema.Bool),
	)

	Bridge = Service.Extend("Bridge",
		schema.F("id", BridgeId),
		schema.F("status", BridgeStatus),
	)

	// ClusterStatus is the full service roster with the overall cluster
	// state.
	ClusterStatus = schema.NewShape("ClusterStatus",
		schema.F("clusterStatus", ClusterState),
		schema.F("mgmt", schema.MapOf(MgmtId, Mgmt)),
		schema.F("clients", schema.MapOf(ClientId, Client)),
		schema.F("servers", schema.MapOf(ServerId, Server)),
		schema.F("bridges", schema.MapOf(BridgeId, Bridge)),
	)

	// ClientConfigStatus tracks how far a client lags behind the current
	// cluster configuration generation.
	ClientConfigStatus = schema.NewShape("ClientConfigStatus",
		schema.F("id", ClientId),
		schema.F("generation", schema.Long),
		schema.F("clientGeneration", schema.Long),
		schema.F("configStatus", schema.OneOf("client status", "ok", "updating", "down")),
		schema.F("delay", schema.Int),
	)

	// Task is one recovery or reallocation job running on a disk.
	Task = schema.NewShape("Task",
		schema.F("diskId", DiskId),
		schema.F("transactionId", schema.Long),
		schema.F("allObjects", schema.Int),
		schema.F("completedObjects", schema.Int),
		schema.F("dispatchedObjects", schema.Int),
		schema.F("unresolvedObjects", schema.Internal(schema.Int)),
	)

	// ActiveRequestDesc is one in-flight I/O request on a client or disk.
	ActiveRequestDesc = schema.NewShape("ActiveRequestDesc",
		schema.F("requestId", schema.Str),
		schema.F("requestIdx", schema.Int),
		schema.F("volume", schema.Either(VolumeName, SnapshotName)),
		schema.F("address", schema.Long),
		schema.F("size", schema.Int),
		schema.F("op", schema.OneOf("RequestOp", "read", "write", "merge", "system", "entries flush", "#bad_state", "#bad_drOp")),
		schema.F("state", schema.Internal(schema.Str)),
		schema.F("prevState", schema.Internal(schema.Str)),
		schema.F("drOp", schema.Internal(schema.Str)),
		schema.F("msecActive", schema.Int),
	)

	ClientActiveRequests = schema.NewShape("ClientActiveRequests",
		schema.F("clientId", ClientId),
		schema.F("requests", schema.ListOf(ActiveRequestDesc)),
	)

	DiskActiveRequests = schema.NewShape("DiskActiveRequests",
		schema.F("diskId", DiskId),
		schema.F("requests", schema.ListOf(ActiveRequestDesc)),
	)

	// AllPeersActiveRequestsQuery narrows an all-peers status query to
	// specific clients or disks.
	AllPeersActiveRequestsQuery = schema.NewShape("AllPeersActiveRequestsQuery",
		schema.F("clients", schema.Maybe(schema.ListOf(ClientId))),
		schema.F("disks", schema.Maybe(schema.ListOf(DiskId))),
	)

	// AllPeersActiveRequests aggregates the per-peer request listings.
	AllPeersActiveRequests = schema.NewShape("AllPeersActiveRequests",
		schema.F("clients", schema.ListOf(ClientActiveRequests)),
		schema.F("disks", schema.ListOf(DiskActiveRequests)),
	)

	// MaintenanceNodeDesc is one node currently under maintenance.
	MaintenanceNodeDesc = schema.NewShape("MaintenanceNodeDesc",
		schema.F("nodeId", NodeId),
		schema.F("started", schema.Long),
		schema.F("duration", schema.Int),
		schema.F("remaining", schema.Int),
		schema.F("description", schema.Maybe(schema.Str)),
	)

	MaintenanceNodesList = schema.NewShape("MaintenanceNodesList",
		schema.F("nodes", schema.ListOf(MaintenanceNodeDesc)),
	)

	MaintenanceSetDesc = schema.NewShape("MaintenanceSetDesc",
		schema.F("nodeId", NodeId),
		schema.F("duration", schema.Int),
		schema.F("overrideDown", schema.Maybe(schema.Bool)),
		schema.F("description", schema.Maybe(schema.Str)),
	)

	MaintenanceCompleteDesc = schema.NewShape("MaintenanceCompleteDesc",
		schema.F("nodeId", NodeId),
	)
)
