package sqlinline

const QUpsertContributor = `--sql 3d81b790-75ce-4d22-ac82-888f2fc085c2
insert into contributors (contributor_id, full_name)
values ($1::text, $2::text)
on conflict (contributor_id) do nothing;
`

const QListContributors = `--sql 863c1e12-2256-4d08-8a09-6d0ad75c4ea3
select contributor_id, full_name
from contributors
order by contributor_id
limit $1::int;
`
