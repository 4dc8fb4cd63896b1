package progclient

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
)

// CallWithLookupTable 通过地址查找表压缩账户引用，构建并提交一笔 v0 交易。
// 与 SignedCall 的区别：先拉取并解析查找表，消息按 v0 格式编译（表内账户替换为索引），
// 签名后序列化并 base64 编码，经原始 sendTransaction RPC 提交（开启 preflight、
// confirmed 预检承诺、base64 编码），最后轮询到 finalized 才返回。
func CallWithLookupTable(
	ctx context.Context,
	conn Conn,
	programID common.PublicKey,
	method string,
	args interface{},
	lookupTableKey common.PublicKey,
	payer types.Account,
	signers []types.Account,
	accounts []types.AccountMeta,
) (string, error) {
	const op = "CallWithLookupTable"

	// 查找表必须已上链，否则在构建任何交易之前就失败
	table, err := FetchLookupTable(ctx, conn, lookupTableKey)
	if err != nil {
		return "", err
	}

	ix, err := BuildInstruction(programID, method, args, accounts)
	if err != nil {
		return "", err
	}

	blockhash, err := conn.GetLatestBlockhash(ctx)
	if err != nil {
		return "", wrapErr(KindNetworkUnavailable, op, method,
			fmt.Errorf("get latest blockhash: %w", err))
	}

	msg := types.NewMessage(types.NewMessageParam{
		FeePayer:                   payer.PublicKey,
		RecentBlockhash:            blockhash,
		Instructions:               []types.Instruction{ix},
		AddressLookupTableAccounts: []types.AddressLookupTableAccount{table},
	})

	tx, err := signTransaction(op, method, msg, payer, signers, accounts)
	if err != nil {
		return "", err
	}

	raw, err := tx.Serialize()
	if err != nil {
		return "", wrapErr(KindSerializationFailed, op, method,
			fmt.Errorf("serialize transaction: %w", err))
	}

	sig, err := conn.SendEncodedTransaction(ctx, base64.StdEncoding.EncodeToString(raw), rpc.SendTransactionConfig{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentConfirmed,
		Encoding:            rpc.SendTransactionConfigEncodingBase64,
	})
	if err != nil {
		return "", wrapErr(KindSubmissionRejected, op, method,
			fmt.Errorf("send raw transaction: %w", err))
	}

	if err := WaitForConfirmation(ctx, conn, sig, rpc.CommitmentFinalized); err != nil {
		return "", err
	}
	return sig, nil
}
