package progclient

import (
	"context"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
)

// SignedCall 构建并提交一笔 legacy 交易，阻塞直到确认，返回 base58 交易签名。
// 流程严格顺序：判别符 → borsh 负载 → 拉最新 blockhash → 组消息（payer 付费）→
// 校验并签名 → 提交 → 轮询确认（confirmed）。任一步失败立即返回对应 Kind 的错误。
// signers 必须覆盖 payer 以及 accounts 中所有 IsSigner 账户。
func SignedCall(
	ctx context.Context,
	conn Conn,
	programID common.PublicKey,
	payer types.Account,
	signers []types.Account,
	method string,
	args interface{},
	accounts []types.AccountMeta,
) (string, error) {
	const op = "SignedCall"

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
		FeePayer:        payer.PublicKey,
		RecentBlockhash: blockhash,
		Instructions:    []types.Instruction{ix},
	})

	tx, err := signTransaction(op, method, msg, payer, signers, accounts)
	if err != nil {
		return "", err
	}

	return sendAndConfirm(ctx, conn, op, method, tx)
}

// signTransaction 校验签名者集合后交给 SDK 签名。
func signTransaction(op, method string, msg types.Message, payer types.Account, signers []types.Account, accounts []types.AccountMeta) (types.Transaction, error) {
	if missing := missingSigners(payer, signers, accounts); len(missing) > 0 {
		return types.Transaction{}, wrapErr(KindSigningFailed, op, method,
			fmt.Errorf("missing signer keypairs for: %v", missing))
	}

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Message: msg,
		Signers: signers,
	})
	if err != nil {
		return types.Transaction{}, wrapErr(KindSigningFailed, op, method,
			fmt.Errorf("sign transaction: %w", err))
	}
	return tx, nil
}

// missingSigners 返回消息需要但 signers 未提供的签名账户。
// payer 始终作为付费签名者参与（与上游程序的约定一致）。
func missingSigners(payer types.Account, signers []types.Account, accounts []types.AccountMeta) []string {
	provided := make(map[common.PublicKey]struct{}, len(signers))
	for _, s := range signers {
		provided[s.PublicKey] = struct{}{}
	}

	var missing []string
	if _, ok := provided[payer.PublicKey]; !ok {
		missing = append(missing, payer.PublicKey.ToBase58())
	}
	for _, meta := range accounts {
		if !meta.IsSigner {
			continue
		}
		if _, ok := provided[meta.PubKey]; !ok {
			missing = append(missing, meta.PubKey.ToBase58())
		}
	}
	return missing
}

// sendAndConfirm 提交交易并等待 confirmed 级别确认。
func sendAndConfirm(ctx context.Context, conn Conn, op, method string, tx types.Transaction) (string, error) {
	sig, err := conn.SendTransaction(ctx, tx)
	if err != nil {
		return "", wrapErr(KindSubmissionRejected, op, method,
			fmt.Errorf("send transaction: %w", err))
	}

	if err := WaitForConfirmation(ctx, conn, sig, rpc.CommitmentConfirmed); err != nil {
		return "", err
	}
	return sig, nil
}
