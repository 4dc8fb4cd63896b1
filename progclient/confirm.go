package progclient

import (
	"context"
	"fmt"
	"time"

	"github.com/blocto/solana-go-sdk/rpc"
)

const defaultConfirmTimeout = 60 * time.Second

// 轮询间隔，测试中会调小。
var confirmPollInterval = 500 * time.Millisecond

// WaitForConfirmation 轮询签名状态直到达到目标承诺级别。
// ctx 无截止时间时套用 defaultConfirmTimeout；到期仍未确认返回 KindConfirmationTimeout。
// 链上执行报错（status.Err 非空）返回 KindSubmissionRejected。
// 瞬时查询失败不会中断轮询，只会消耗剩余时间。
func WaitForConfirmation(ctx context.Context, conn Conn, sig string, commitment rpc.Commitment) error {
	const op = "WaitForConfirmation"

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultConfirmTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(confirmPollInterval)
	defer ticker.Stop()

	for {
		status, err := conn.GetSignatureStatus(ctx, sig)
		if err == nil && status != nil {
			if status.Err != nil {
				return wrapErr(KindSubmissionRejected, op, sig,
					fmt.Errorf("transaction failed on chain: %v", status.Err))
			}
			if status.ConfirmationStatus != nil && commitmentReached(*status.ConfirmationStatus, commitment) {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return wrapErr(KindConfirmationTimeout, op, sig, ctx.Err())
		case <-ticker.C:
		}
	}
}

func commitmentRank(c rpc.Commitment) int {
	switch c {
	case rpc.CommitmentProcessed:
		return 1
	case rpc.CommitmentConfirmed:
		return 2
	case rpc.CommitmentFinalized:
		return 3
	default:
		return 0
	}
}

func commitmentReached(got, want rpc.Commitment) bool {
	return commitmentRank(got) >= commitmentRank(want)
}
