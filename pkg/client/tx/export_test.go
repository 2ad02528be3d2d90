package tx

var (
	TxBroadcastsTotal = txBroadcastsTotal
	SmartQueriesTotal = smartQueriesTotal
)
