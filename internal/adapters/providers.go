package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/catapult/internal/adapters/blockchain"
	internalconfig "github.com/trebuchet-org/catapult/internal/adapters/config"
	"github.com/trebuchet-org/catapult/internal/adapters/contracts"
	"github.com/trebuchet-org/catapult/internal/adapters/deployer"
	"github.com/trebuchet-org/catapult/internal/adapters/fs"
	"github.com/trebuchet-org/catapult/internal/adapters/interactive"
	"github.com/trebuchet-org/catapult/internal/adapters/progress"
	"github.com/trebuchet-org/catapult/internal/adapters/senders"
	"github.com/trebuchet-org/catapult/internal/config"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// BlockchainSet provides the process-wide chain connection and everything that signs or sends through it
var BlockchainSet = wire.NewSet(
	blockchain.NewClient,
	wire.Bind(new(usecase.ChainReader), new(*blockchain.Client)),
	wire.Bind(new(deployer.BackendSource), new(*blockchain.Client)),
	wire.Bind(new(senders.ChainIDSource), new(*blockchain.Client)),

	senders.NewSigner,
	wire.Bind(new(usecase.AccountResolver), new(*senders.Signer)),
	wire.Bind(new(deployer.TransactorSource), new(*senders.Signer)),

	deployer.NewDeployer,
	wire.Bind(new(usecase.ContractSubmitter), new(*deployer.Deployer)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	contracts.NewRegistry,
	wire.Bind(new(usecase.TemplateRegistry), new(*contracts.Registry)),

	fs.NewAddressFileWriter,
	wire.Bind(new(usecase.AddressWriter), new(*fs.AddressFileWriter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.InteractivePrompter), new(*interactive.SelectorAdapter)),

	progress.ProvideProgressSink,
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	config.ProvideNetworkResolver,
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	BlockchainSet,
	FSSet,
	InteractiveSet,
	ConfigSet,
)
