package fixtures

import "github.com/kycgate/go-idclaim/principal/ed25519/signer"

// did:key:z6Mkkpa2XP3GE8gwZtfYX6voGxXDG1FHDwvQnj9we75NXDWV
var Issuer, _ = signer.Parse("MgCZ+y7RAuZm/Hl8/UTrE7qVwntMixq8Gg6O5TIHlISBg4O0BXpumgeIECxcQ5pGTtbpvml3xyh5miO6e9utbT3FXTd4=")

// did:key:z6MkjzgU566cMMHmBzCdPoEtdAy6i3o2EySwoNTHfuDKajRn
var SecondIssuer, _ = signer.Parse("MgCYlT9+Qz9D4QO3wICHW31ySu4xleyl9Od6ZejN8Eh68G+0BUlcNyCWBoHZQH3UjbBhvq3v7BBkC01REstISHCZ9x00=")

// did:key:z6MkmGtWzLBAEpXediT829U2oA69mvAzWsub4UwAUxbMGVPa
var Subject, _ = signer.Parse("MgCYakBwPmLc94O03LzAysUP3A7GxE6u7q0ZyGTow7ZS/eO0BZVmotpCMEBNJt28DX4Xux0SBYZHCaaodq5pmJYCiviU=")

// did:key:z6Mkswt2GpBSHxVSfYS6yB9ApW3ndWTitjvmFsN2aM5aue27
var Operator, _ = signer.Parse("MgCboBzQeBUYjo0tZlrtCSzh66qMTHB9DgnlYa/8UGTqVqe0ByHzfUWvzbGbw0S00EUE54VJ0r4/hfN913DXWbUo3jqQ=")
