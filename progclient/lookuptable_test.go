package progclient

import (
	"context"
	"testing"
	"time"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/address_lookup_table"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLookupTable_EmptyTable(t *testing.T) {
	table := types.NewAccount()
	conn := &fakeConn{
		accounts: map[string]client.AccountInfo{
			// 只有元数据头，还没 extend 过
			table.PublicKey.ToBase58(): tableAccountInfo(),
		},
	}

	got, err := FetchLookupTable(context.Background(), conn, table.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, table.PublicKey, got.Key)
	assert.Empty(t, got.Addresses)
}

// 表地址上挂着别的程序的账户：数据再像也不能当查找表用
func TestFetchLookupTable_WrongOwner(t *testing.T) {
	table := types.NewAccount()
	conn := &fakeConn{
		accounts: map[string]client.AccountInfo{
			table.PublicKey.ToBase58(): {
				Owner: testProgramID,
				Data:  lookupTableData(testProgramID),
			},
		},
	}

	_, err := FetchLookupTable(context.Background(), conn, table.PublicKey)
	require.Error(t, err)
	assert.Equal(t, KindSerializationFailed, KindOf(err))
}

func TestFetchLookupTable_Uninitialized(t *testing.T) {
	// 状态枚举清零：账户存在但表还没初始化
	data := lookupTableData()
	data[0], data[1], data[2], data[3] = 0, 0, 0, 0

	table := types.NewAccount()
	conn := &fakeConn{
		accounts: map[string]client.AccountInfo{
			table.PublicKey.ToBase58(): {
				Owner: common.AddressLookupTableProgramID,
				Data:  data,
			},
		},
	}

	_, err := FetchLookupTable(context.Background(), conn, table.PublicKey)
	require.Error(t, err)
	assert.Equal(t, KindSerializationFailed, KindOf(err))
	assert.ErrorContains(t, err, "not initialized")
}

func TestCreateLookupTable(t *testing.T) {
	payer := types.NewAccount()
	conn := &fakeConn{
		slot:      123,
		blockhash: testBlockhash,
		sendSig:   "create-sig",
		statuses:  []*rpc.SignatureStatus{sigStatus(rpc.CommitmentConfirmed)},
	}

	tableKey, sig, err := CreateLookupTable(context.Background(), conn, payer)
	require.NoError(t, err)
	assert.Equal(t, "create-sig", sig)

	// 表地址由 (authority, slot) 确定性推导
	wantKey, _ := address_lookup_table.DeriveLookupTableAddress(payer.PublicKey, 123)
	assert.Equal(t, wantKey, tableKey)

	require.Len(t, conn.sentTxs, 1)
	assert.Len(t, conn.sentTxs[0].Signatures, 1)
}

func TestCreateLookupTable_SlotUnavailable(t *testing.T) {
	payer := types.NewAccount()
	conn := &fakeConn{slotErr: assert.AnError}

	_, _, err := CreateLookupTable(context.Background(), conn, payer)
	require.Error(t, err)
	assert.Equal(t, KindNetworkUnavailable, KindOf(err))
	assert.Empty(t, conn.sentTxs)
}

func TestExtendLookupTable(t *testing.T) {
	payer := types.NewAccount()
	table := types.NewAccount()
	conn := &fakeConn{
		blockhash: testBlockhash,
		sendSig:   "extend-sig",
		statuses:  []*rpc.SignatureStatus{sigStatus(rpc.CommitmentConfirmed)},
	}

	sig, err := ExtendLookupTable(context.Background(), conn, payer, table.PublicKey,
		[]common.PublicKey{testProgramID, payer.PublicKey})
	require.NoError(t, err)
	assert.Equal(t, "extend-sig", sig)
	require.Len(t, conn.sentTxs, 1)
}

// 确认失败必须作为错误返回，调用方不能把它和"地址没加上"混为一谈
func TestExtendLookupTable_ConfirmationErrorPropagates(t *testing.T) {
	fastPoll(t)
	payer := types.NewAccount()
	table := types.NewAccount()
	conn := &fakeConn{
		blockhash: testBlockhash,
		sendSig:   "extend-sig",
		// 一直拿不到状态
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	sig, err := ExtendLookupTable(ctx, conn, payer, table.PublicKey, []common.PublicKey{testProgramID})
	require.Error(t, err)
	assert.Equal(t, KindConfirmationTimeout, KindOf(err))
	assert.Empty(t, sig)

	// 交易确实提交过：调用方应依据错误重新查询链上状态，而不是默认失败
	assert.Len(t, conn.sentTxs, 1)
}
