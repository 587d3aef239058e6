//go:build ruleguard

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

func gormNoManualTx(m dsl.Matcher) {
	m.Match(`func (r *Repo) $_($*_) ($*_) { $*body }`).
		Where(
			m.File().PkgPath.Matches(`internal/repositories`) &&
				m["body"].Text.Matches(`\.Begin\(`),
		).
		Report("gorm query: manual transaction, use store.Database.RunInTx instead")
}
