package progclient

import (
	"context"
	"encoding/binary"
	"math"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/address_lookup_table"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
)

// testBlockhash 是 32 个零字节的 base58，作为测试用的合法 blockhash。
const testBlockhash = "11111111111111111111111111111111"

// fakeConn 按字段注入各 RPC 的返回值，并记录提交调用。
type fakeConn struct {
	blockhash    string
	blockhashErr error

	slot    uint64
	slotErr error

	accounts   map[string]client.AccountInfo
	accountErr error

	sendSig string
	sendErr error
	sentTxs []types.Transaction

	rawSig      string
	rawErr      error
	sentRaw     []string
	sentRawCfgs []rpc.SendTransactionConfig

	// 每次 GetSignatureStatus 依次返回一个元素，耗尽后停在最后一个；为空则返回 nil。
	statuses    []*rpc.SignatureStatus
	statusErr   error
	statusCalls int
}

func (f *fakeConn) GetLatestBlockhash(ctx context.Context) (string, error) {
	if f.blockhashErr != nil {
		return "", f.blockhashErr
	}
	return f.blockhash, nil
}

func (f *fakeConn) GetSlot(ctx context.Context) (uint64, error) {
	if f.slotErr != nil {
		return 0, f.slotErr
	}
	return f.slot, nil
}

func (f *fakeConn) GetAccountInfo(ctx context.Context, base58Addr string) (client.AccountInfo, error) {
	if f.accountErr != nil {
		return client.AccountInfo{}, f.accountErr
	}
	return f.accounts[base58Addr], nil
}

func (f *fakeConn) SendTransaction(ctx context.Context, tx types.Transaction) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sentTxs = append(f.sentTxs, tx)
	return f.sendSig, nil
}

func (f *fakeConn) SendEncodedTransaction(ctx context.Context, base64Tx string, cfg rpc.SendTransactionConfig) (string, error) {
	if f.rawErr != nil {
		return "", f.rawErr
	}
	f.sentRaw = append(f.sentRaw, base64Tx)
	f.sentRawCfgs = append(f.sentRawCfgs, cfg)
	return f.rawSig, nil
}

func (f *fakeConn) GetSignatureStatus(ctx context.Context, sig string) (*rpc.SignatureStatus, error) {
	f.statusCalls++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	if len(f.statuses) == 0 {
		return nil, nil
	}
	idx := f.statusCalls - 1
	if idx >= len(f.statuses) {
		idx = len(f.statuses) - 1
	}
	return f.statuses[idx], nil
}

func sigStatus(c rpc.Commitment) *rpc.SignatureStatus {
	return &rpc.SignatureStatus{ConfirmationStatus: &c}
}

// lookupTableData 构造一个已初始化查找表的账户数据：
// 56 字节元数据头（状态枚举、deactivation slot、authority 标记）加连续的 32 字节地址。
func lookupTableData(addrs ...common.PublicKey) []byte {
	metaSize := int(address_lookup_table.LOOKUP_TABLE_META_SIZE)
	data := make([]byte, metaSize, metaSize+32*len(addrs))
	binary.LittleEndian.PutUint32(data[0:4], 1)
	binary.LittleEndian.PutUint64(data[4:12], math.MaxUint64) // 未停用
	data[21] = 1 // authority 存在标记
	for _, a := range addrs {
		data = append(data, a.Bytes()...)
	}
	return data
}

func tableAccountInfo(addrs ...common.PublicKey) client.AccountInfo {
	return client.AccountInfo{
		Owner: common.AddressLookupTableProgramID,
		Data:  lookupTableData(addrs...),
	}
}
