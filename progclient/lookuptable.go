package progclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/address_lookup_table"
	"github.com/blocto/solana-go-sdk/types"
)

// CreateLookupTable 创建一张空的地址查找表：取当前 slot，从 (payer, slot) 推导表地址，
// 提交创建指令并等待确认。payer 同时作为表的 authority。
// 返回新表地址与交易签名。
func CreateLookupTable(ctx context.Context, conn Conn, payer types.Account) (common.PublicKey, string, error) {
	const op = "CreateLookupTable"

	slot, err := conn.GetSlot(ctx)
	if err != nil {
		return common.PublicKey{}, "", wrapErr(KindNetworkUnavailable, op, "",
			fmt.Errorf("get slot: %w", err))
	}

	tableKey, bump := address_lookup_table.DeriveLookupTableAddress(payer.PublicKey, slot)
	ix := address_lookup_table.CreateLookupTable(address_lookup_table.CreateLookupTableParams{
		LookupTable: tableKey,
		Authority:   payer.PublicKey,
		Payer:       payer.PublicKey,
		RecentSlot:  slot,
		BumpSeed:    bump,
	})

	sig, err := submitTableInstruction(ctx, conn, op, tableKey, payer, ix)
	if err != nil {
		return common.PublicKey{}, "", err
	}
	return tableKey, sig, nil
}

// ExtendLookupTable 向既有查找表追加地址并等待确认，返回交易签名。
// 确认失败与其他操作一样作为错误返回，不吞掉。
func ExtendLookupTable(ctx context.Context, conn Conn, payer types.Account, tableKey common.PublicKey, addresses []common.PublicKey) (string, error) {
	const op = "ExtendLookupTable"

	payerKey := payer.PublicKey
	ix := address_lookup_table.ExtendLookupTable(address_lookup_table.ExtendLookupTableParams{
		LookupTable: tableKey,
		Authority:   payer.PublicKey,
		Payer:       &payerKey,
		Addresses:   addresses,
	})

	return submitTableInstruction(ctx, conn, op, tableKey, payer, ix)
}

func submitTableInstruction(ctx context.Context, conn Conn, op string, tableKey common.PublicKey, payer types.Account, ix types.Instruction) (string, error) {
	blockhash, err := conn.GetLatestBlockhash(ctx)
	if err != nil {
		return "", wrapErr(KindNetworkUnavailable, op, tableKey.ToBase58(),
			fmt.Errorf("get latest blockhash: %w", err))
	}

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        payer.PublicKey,
			RecentBlockhash: blockhash,
			Instructions:    []types.Instruction{ix},
		}),
		Signers: []types.Account{payer},
	})
	if err != nil {
		return "", wrapErr(KindSigningFailed, op, tableKey.ToBase58(),
			fmt.Errorf("sign transaction: %w", err))
	}

	return sendAndConfirm(ctx, conn, op, tableKey.ToBase58(), tx)
}

// FetchLookupTable 拉取查找表账户并解析出地址列表，供 v0 消息编译使用。
// 账户属主与数据解析交给 SDK 的 DeserializeLookupTable，属主不是查找表程序时同样报错。
func FetchLookupTable(ctx context.Context, conn Conn, tableKey common.PublicKey) (types.AddressLookupTableAccount, error) {
	const op = "FetchLookupTable"
	key := tableKey.ToBase58()

	info, err := conn.GetAccountInfo(ctx, key)
	if err != nil {
		return types.AddressLookupTableAccount{}, wrapErr(KindNetworkUnavailable, op, key,
			fmt.Errorf("get account info: %w", err))
	}
	if info.Owner == (common.PublicKey{}) && len(info.Data) == 0 {
		return types.AddressLookupTableAccount{}, wrapErr(KindAccountNotFound, op, key, nil)
	}

	table, err := address_lookup_table.DeserializeLookupTable(info.Data, info.Owner)
	if err != nil {
		return types.AddressLookupTableAccount{}, wrapErr(KindSerializationFailed, op, key,
			fmt.Errorf("deserialize lookup table: %w", err))
	}
	// 未初始化的账户 SDK 解析不报错，状态要单独判
	if table.ProgramState != address_lookup_table.ProgramStateLookupTable {
		return types.AddressLookupTableAccount{}, wrapErr(KindSerializationFailed, op, key,
			errors.New("lookup table not initialized"))
	}

	return types.AddressLookupTableAccount{
		Key:       tableKey,
		Addresses: table.Addresses,
	}, nil
}
